// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"context"

	"github.com/danielhkuo/lottolens/models"
)

// Aggregator builds the hot/cold/overdue stats of a game.
type Aggregator struct {
	source   Source
	pageSize int
}

// NewAggregator returns an Aggregator reading from src. A nil src makes
// every Aggregate call fail with ErrSourceUnavailable.
func NewAggregator(src Source, pageSize int) *Aggregator {
	return &Aggregator{source: src, pageSize: pageSize}
}

// Aggregate loads the game, its hot/cold lists and its full draw history,
// then merges them with the overdue ranking of each category.
func (a *Aggregator) Aggregate(ctx context.Context, gameID string, percent int) (models.GameStats, error) {
	if a.source == nil {
		return nil, ErrSourceUnavailable
	}

	game, err := a.source.FetchGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	hotCold, err := a.source.FetchHotCold(ctx, gameID)
	if err != nil {
		return nil, err
	}

	scan, err := Scan(ctx, a.source, gameID, a.pageSize)
	if err != nil {
		return nil, err
	}

	return Merge(game, hotCold, scan, percent), nil
}

// Merge combines precomputed hot/cold lists with overdue rankings. The main
// category is always present; supplementary and powerball keys only appear
// when the game defines a pool for them, whatever hotCold contains.
func Merge(game models.Game, hotCold models.GameHotCold, scan *ScanResult, percent int) models.GameStats {
	if scan == nil {
		scan = newScanResult()
	}

	out := models.GameStats{}
	for _, c := range models.Categories {
		pool := game.PoolSize(c)
		if c != models.CategoryMain && pool <= 0 {
			continue
		}

		hc := hotCold[c]
		prefix := c.KeyPrefix()
		out[prefix+"_hot"] = nonNil(hc.Hot)
		out[prefix+"_cold"] = nonNil(hc.Cold)
		out[prefix+"_overdue"] = RankOverdue(scan.LastSeen[c], scan.LatestDraw, pool, percent)
	}
	return out
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
