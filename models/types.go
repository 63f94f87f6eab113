// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Category is one of the independent ball pools of a game.
type Category int

const (
	CategoryMain Category = iota
	CategorySupplementary
	CategoryPowerball
)

// Categories lists every category in response order.
var Categories = [...]Category{CategoryMain, CategorySupplementary, CategoryPowerball}

// Result type tags as stored in draw_results.type
const (
	TypeMain          = "main"
	TypeSupplementary = "supplementary"
	TypePowerball     = "powerball"
)

// ParseCategory maps a stored result tag to its category.
// Unknown tags report ok=false.
func ParseCategory(tag string) (Category, bool) {
	switch tag {
	case TypeMain:
		return CategoryMain, true
	case TypeSupplementary:
		return CategorySupplementary, true
	case TypePowerball:
		return CategoryPowerball, true
	}
	return 0, false
}

func (c Category) String() string {
	switch c {
	case CategoryMain:
		return TypeMain
	case CategorySupplementary:
		return TypeSupplementary
	case CategoryPowerball:
		return TypePowerball
	}
	return "unknown"
}

// KeyPrefix is the prefix used for this category's keys in GameStats
// (main_hot, supp_overdue, powerball_cold, ...).
func (c Category) KeyPrefix() string {
	switch c {
	case CategoryMain:
		return "main"
	case CategorySupplementary:
		return "supp"
	case CategoryPowerball:
		return "powerball"
	}
	return "unknown"
}

// Request types

type PredictRequest struct {
	GameID string `json:"game_id"`
	Draws  []int  `json:"draws"`
}

type NotifyRequest struct {
	DrawNumber int `json:"draw_number"`
}

// Response types

type PredictResponse struct {
	PredictedNumbers []int `json:"predicted_numbers"`
}

type NotifyResponse struct {
	Delivered int `json:"delivered"`
}

// GameStats is the stats response. Keys for categories a game does not
// define are absent, not empty.
type GameStats map[string][]int

// DrawMessage is pushed to live subscribers when a draw is announced.
type DrawMessage struct {
	DrawNumber int `json:"draw_number"`
}

// DrawRecord is the latest-draw record pushed on connect and by the watcher.
type DrawRecord struct {
	DrawNumber int    `json:"draw_number"`
	DrawDate   string `json:"draw_date"`
}

// Domain types

// Game holds the pool size of each category. A zero pool size means the
// category does not exist for the game.
type Game struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MainMax      int    `json:"main_max"`
	SuppMax      int    `json:"supp_max"`
	PowerballMax int    `json:"powerball_max"`
}

// PoolSize returns the max ball value for c.
func (g Game) PoolSize(c Category) int {
	switch c {
	case CategoryMain:
		return g.MainMax
	case CategorySupplementary:
		return g.SuppMax
	case CategoryPowerball:
		return g.PowerballMax
	}
	return 0
}

type Draw struct {
	ID         string       `json:"id"`
	DrawNumber int          `json:"draw_number"`
	DrawDate   string       `json:"draw_date,omitempty"`
	Results    []DrawResult `json:"results"`
}

// DrawResult is a single drawn ball. Type is the raw stored tag; use
// ParseCategory to classify it.
type DrawResult struct {
	Number int    `json:"number"`
	Type   string `json:"type"`
}

// HotCold holds precomputed hot and cold lists for one category.
type HotCold struct {
	Hot  []int `json:"hot"`
	Cold []int `json:"cold"`
}

// GameHotCold maps each category to its precomputed lists. Missing
// categories have no data.
type GameHotCold map[Category]HotCold

// LatestDraw pairs a game with its most recent draw.
type LatestDraw struct {
	GameID string
	DrawRecord
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
