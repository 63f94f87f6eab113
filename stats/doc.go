// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats computes draw statistics for a game.

# Overdue Ranking

Scan walks a game's draw history newest first, in pages, building a
last-seen map per category:

	scan, err := stats.Scan(ctx, src, gameID, 1000)

RankOverdue turns a last-seen map into the balls that have gone longest
without appearing. Never-seen balls rank as maximally overdue and ties go
to the lower ball number:

	overdue := stats.RankOverdue(scan.LastSeen[models.CategoryMain], scan.LatestDraw, 45, 20)

# Aggregation

Aggregator combines a game's pool sizes, its precomputed hot/cold lists and
the overdue rankings into a models.GameStats response. It returns
ErrGameNotFound for unknown games and ErrSourceUnavailable when no data
source is configured.

# Bell Curve

PredictBellCurve fits a normal distribution to a list of past numbers and
returns the numbers between two quantiles.
*/
package stats
