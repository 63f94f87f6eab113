// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the LottoLens API.

# Handler Types

Each handler is a struct holding its dependencies:

  - PredictHandler: bell curve number prediction
  - StatsHandler: hot, cold and overdue numbers per game
  - DrawsHandler: latest draw lookup and draw announcements
  - LiveHandler: websocket subscriptions to draw announcements

Handlers are created via constructor functions:

	statsHandler := handlers.NewStatsHandler(stats.NewAggregator(src, cfg.ScanPageSize))
	drawsHandler := handlers.NewDrawsHandler(st, h)

The store may be nil when the server runs without a database. Stats and
latest-draw requests then fail with 500 "Data source unavailable",
predictions are served but not recorded, and live subscribers get no
initial draw record.

# Stats

	GET /games/{id}/stats?percent=20

percent must be an integer between 1 and 100. The response always carries
main_hot, main_cold and main_overdue; the supp_* and powerball_* keys only
appear for games that have those pools.

# Live Draws

	GET /ws/draws/{id}          → Subscribe (websocket)
	POST /games/{id}/notify     → Notify

On connect a subscriber receives the latest {draw_number, draw_date}
record. Notify pushes {draw_number} to every subscriber of the game and
reports how many deliveries succeeded.
*/
package handlers
