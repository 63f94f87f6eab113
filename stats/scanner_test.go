// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/lottolens/models"
)

// fakeSource serves draws from memory, newest first, and records the pages
// requested.
type fakeSource struct {
	game    models.Game
	hotCold models.GameHotCold
	draws   []models.Draw

	gameErr  error
	pageErr  error
	failAt   int
	requests [][2]int
}

func (f *fakeSource) FetchGame(ctx context.Context, gameID string) (models.Game, error) {
	if f.gameErr != nil {
		return models.Game{}, f.gameErr
	}
	return f.game, nil
}

func (f *fakeSource) FetchHotCold(ctx context.Context, gameID string) (models.GameHotCold, error) {
	return f.hotCold, nil
}

func (f *fakeSource) FetchDrawsPage(ctx context.Context, gameID string, offset, limit int) ([]models.Draw, error) {
	f.requests = append(f.requests, [2]int{offset, limit})
	if f.pageErr != nil && offset >= f.failAt {
		return nil, f.pageErr
	}
	if offset >= len(f.draws) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.draws) {
		end = len(f.draws)
	}
	return f.draws[offset:end], nil
}

func draw(number int, results ...models.DrawResult) models.Draw {
	return models.Draw{DrawNumber: number, Results: results}
}

func ball(n int, tag string) models.DrawResult {
	return models.DrawResult{Number: n, Type: tag}
}

func TestScan_FirstOccurrenceWins(t *testing.T) {
	src := &fakeSource{draws: []models.Draw{
		draw(10, ball(1, models.TypeMain), ball(2, models.TypeMain), ball(7, models.TypePowerball)),
		draw(9, ball(1, models.TypeMain), ball(3, models.TypeMain)),
		draw(7, ball(2, models.TypeMain), ball(3, models.TypeMain), ball(4, models.TypeSupplementary)),
		draw(6, ball(4, models.TypeSupplementary), ball(7, models.TypePowerball)),
	}}

	res, err := Scan(context.Background(), src, "g1", 2)
	require.NoError(t, err)

	assert.Equal(t, 10, res.LatestDraw)
	assert.Equal(t, LastSeen{1: 10, 2: 10, 3: 9}, res.LastSeen[models.CategoryMain])
	assert.Equal(t, LastSeen{4: 7}, res.LastSeen[models.CategorySupplementary])
	assert.Equal(t, LastSeen{7: 10}, res.LastSeen[models.CategoryPowerball])
}

func TestScan_PagesUntilShortPage(t *testing.T) {
	src := &fakeSource{}
	for n := 5; n >= 1; n-- {
		src.draws = append(src.draws, draw(n, ball(n, models.TypeMain)))
	}

	_, err := Scan(context.Background(), src, "g1", 2)
	require.NoError(t, err)

	// 2 + 2 + 1 rows: the third page is short and ends the scan.
	assert.Equal(t, [][2]int{{0, 2}, {2, 2}, {4, 2}}, src.requests)
}

func TestScan_ExactMultipleFetchesEmptyPage(t *testing.T) {
	src := &fakeSource{draws: []models.Draw{
		draw(4, ball(1, models.TypeMain)),
		draw(3, ball(2, models.TypeMain)),
	}}

	res, err := Scan(context.Background(), src, "g1", 2)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 2}, {2, 2}}, src.requests)
	assert.Equal(t, 4, res.LatestDraw)
}

func TestScan_NoDraws(t *testing.T) {
	res, err := Scan(context.Background(), &fakeSource{}, "g1", 10)
	require.NoError(t, err)

	assert.Equal(t, 0, res.LatestDraw)
	for _, c := range models.Categories {
		assert.Empty(t, res.LastSeen[c])
	}
}

func TestScan_IgnoresUnknownTagsAndEmptyDraws(t *testing.T) {
	src := &fakeSource{draws: []models.Draw{
		draw(12),
		draw(11, ball(5, "bonus"), ball(6, "MAIN"), ball(8, models.TypeMain)),
	}}

	res, err := Scan(context.Background(), src, "g1", 10)
	require.NoError(t, err)

	assert.Equal(t, 12, res.LatestDraw)
	assert.Equal(t, LastSeen{8: 11}, res.LastSeen[models.CategoryMain])
	assert.Empty(t, res.LastSeen[models.CategorySupplementary])
	assert.Empty(t, res.LastSeen[models.CategoryPowerball])
}

func TestScan_DefaultPageSize(t *testing.T) {
	src := &fakeSource{}
	_, err := Scan(context.Background(), src, "g1", 0)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, DefaultPageSize}}, src.requests)
}

func TestScan_FetchErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	src := &fakeSource{pageErr: boom, failAt: 2}
	for n := 6; n >= 1; n-- {
		src.draws = append(src.draws, draw(n, ball(n, models.TypeMain)))
	}

	res, err := Scan(context.Background(), src, "g1", 2)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, src.requests, 2)
}
