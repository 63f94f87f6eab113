// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/lottolens/metrics"
	"github.com/danielhkuo/lottolens/models"
)

// DefaultPageSize matches the row cap of the hosted database the draw
// history originally lived in.
const DefaultPageSize = 1000

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrSourceUnavailable = errors.New("data source unavailable")
)

// DrawSource returns one page of a game's draws ordered by draw_number
// descending.
type DrawSource interface {
	FetchDrawsPage(ctx context.Context, gameID string, offset, limit int) ([]models.Draw, error)
}

// Source is everything the stats aggregation reads.
type Source interface {
	DrawSource
	FetchGame(ctx context.Context, gameID string) (models.Game, error)
	FetchHotCold(ctx context.Context, gameID string) (models.GameHotCold, error)
}

// ScanResult is the last-seen map of each category plus the newest draw
// number observed.
type ScanResult struct {
	LastSeen   [len(models.Categories)]LastSeen
	LatestDraw int
}

func newScanResult() *ScanResult {
	res := &ScanResult{}
	for _, c := range models.Categories {
		res.LastSeen[c] = LastSeen{}
	}
	return res
}

// Scan walks a game's full draw history newest first, one page at a time,
// and records the first (most recent) draw in which each ball appeared.
// Paging stops at the first short page. Pages are fetched sequentially; the
// first-write-wins rule depends on that order.
func Scan(ctx context.Context, src DrawSource, gameID string, pageSize int) (*ScanResult, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	res := newScanResult()
	for offset := 0; ; offset += pageSize {
		page, err := src.FetchDrawsPage(ctx, gameID, offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch draws at offset %d: %w", offset, err)
		}
		metrics.RecordScanPage()

		for _, draw := range page {
			res.add(draw)
		}

		if len(page) < pageSize {
			return res, nil
		}
	}
}

func (res *ScanResult) add(draw models.Draw) {
	if draw.DrawNumber > res.LatestDraw {
		res.LatestDraw = draw.DrawNumber
	}
	for _, r := range draw.Results {
		c, ok := models.ParseCategory(r.Type)
		if !ok {
			continue
		}
		seen := res.LastSeen[c]
		if _, exists := seen[r.Number]; !exists {
			seen[r.Number] = draw.DrawNumber
		}
	}
}
