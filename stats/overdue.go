// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"math"
	"sort"
)

// LastSeen maps a ball number to the most recent draw_number it appeared in.
// A missing ball has never been seen.
type LastSeen map[int]int

// GroupSize returns how many balls an overdue ranking returns for a pool:
// max(1, round(poolSize*percent/100)). An empty pool yields 0.
func GroupSize(poolSize, percent int) int {
	if poolSize <= 0 {
		return 0
	}
	n := int(math.RoundToEven(float64(poolSize) * float64(percent) / 100))
	if n < 1 {
		return 1
	}
	return n
}

// RankOverdue orders every ball in [1, poolSize] by draws elapsed since it
// was last seen, longest first, and returns the first GroupSize balls.
// Unseen balls count as last seen at draw 0. Equal gaps rank the lower ball
// first. percent is not range checked here.
func RankOverdue(lastSeen LastSeen, latestDraw, poolSize, percent int) []int {
	size := GroupSize(poolSize, percent)
	if size == 0 {
		return []int{}
	}

	type ballGap struct {
		number int
		gap    int
	}

	balls := make([]ballGap, 0, poolSize)
	for n := 1; n <= poolSize; n++ {
		balls = append(balls, ballGap{number: n, gap: latestDraw - lastSeen[n]})
	}

	sort.Slice(balls, func(i, j int) bool {
		a, b := balls[i], balls[j]
		if a.gap != b.gap {
			return a.gap > b.gap
		}
		return a.number < b.number
	})

	if size > len(balls) {
		size = len(balls)
	}
	overdue := make([]int, size)
	for i := range overdue {
		overdue[i] = balls[i].number
	}
	return overdue
}
