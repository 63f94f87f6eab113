// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSize(t *testing.T) {
	tests := []struct {
		name     string
		pool     int
		percent  int
		expected int
	}{
		{"typical", 45, 20, 9},
		{"rounds half to even down", 5, 50, 2},
		{"rounds half to even up", 3, 50, 2},
		{"zero percent clamps to one", 45, 0, 1},
		{"tiny percent clamps to one", 10, 1, 1},
		{"single ball pool", 1, 20, 1},
		{"full pool", 20, 100, 20},
		{"empty pool", 0, 50, 0},
		{"negative pool", -3, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GroupSize(tt.pool, tt.percent))
		})
	}
}

func TestRankOverdue_Example(t *testing.T) {
	// ball 2 seen at draw 2, balls 1 and 3 never seen, latest draw 3
	got := RankOverdue(LastSeen{2: 2}, 3, 3, 50)
	assert.Equal(t, []int{1, 3}, got)
}

func TestRankOverdue_EmptyPool(t *testing.T) {
	assert.Empty(t, RankOverdue(LastSeen{1: 5}, 10, 0, 100))
	assert.NotNil(t, RankOverdue(nil, 10, 0, 100))
}

func TestRankOverdue_ZeroPercentReturnsOne(t *testing.T) {
	got := RankOverdue(LastSeen{1: 9, 2: 3, 3: 7}, 10, 3, 0)
	assert.Equal(t, []int{2}, got)
}

func TestRankOverdue_TieBreakLowerNumberFirst(t *testing.T) {
	lastSeen := LastSeen{1: 8, 2: 5, 3: 8, 4: 5, 5: 10}
	got := RankOverdue(lastSeen, 10, 5, 100)
	assert.Equal(t, []int{2, 4, 1, 3, 5}, got)
}

func TestRankOverdue_PercentAboveHundredCapsAtPool(t *testing.T) {
	got := RankOverdue(LastSeen{}, 4, 4, 250)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestRankOverdue_NoDrawsAllUnseen(t *testing.T) {
	got := RankOverdue(LastSeen{}, 0, 10, 30)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestRankOverdue_IgnoresBallsOutsidePool(t *testing.T) {
	got := RankOverdue(LastSeen{1: 1, 2: 1, 99: 1}, 5, 2, 100)
	assert.Equal(t, []int{1, 2}, got)
}

func TestRankOverdue_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 500; iter++ {
		pool := 1 + rng.Intn(80)
		percent := 1 + rng.Intn(100)
		latest := rng.Intn(300)

		lastSeen := LastSeen{}
		for n := 1; n <= pool; n++ {
			if latest > 0 && rng.Intn(3) > 0 {
				lastSeen[n] = 1 + rng.Intn(latest)
			}
		}

		got := RankOverdue(lastSeen, latest, pool, percent)
		require.Len(t, got, GroupSize(pool, percent))

		seen := map[int]bool{}
		for i, n := range got {
			require.True(t, n >= 1 && n <= pool, "ball %d outside pool %d", n, pool)
			require.False(t, seen[n], "duplicate ball %d", n)
			seen[n] = true

			if i == 0 {
				continue
			}
			prev := got[i-1]
			prevGap := latest - lastSeen[prev]
			gap := latest - lastSeen[n]
			require.True(t, prevGap > gap || (prevGap == gap && prev < n),
				"ball %d (gap %d) ranked before %d (gap %d)", prev, prevGap, n, gap)
		}

		// Unseen balls rank at or before every seen ball.
		sawSeen := false
		for _, n := range got {
			if _, ok := lastSeen[n]; ok && lastSeen[n] > 0 {
				sawSeen = true
				continue
			}
			require.False(t, sawSeen, "unseen ball %d ranked after a seen ball", n)
		}
	}
}
