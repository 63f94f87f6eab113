// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the LottoLens API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, h, cfg)

db may be nil; the stats and latest-draw routes then answer 500 "Data
source unavailable" while the rest keep working.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Prediction:

	POST /predict?low_pct=&high_pct= - Bell curve prediction

Games:

	GET  /games/{id}/stats?percent= - Hot, cold and overdue numbers
	GET  /games/{id}/draws/latest   - Latest draw record
	POST /games/{id}/notify         - Announce a draw to live subscribers

Live:

	GET /ws/draws/{id} - Websocket draw announcements

# Handler Initialization

The router builds the store and aggregator and injects them into handlers:

	predictHandler := handlers.NewPredictHandler(st)
	statsHandler := handlers.NewStatsHandler(stats.NewAggregator(src, cfg.ScanPageSize))
	drawsHandler := handlers.NewDrawsHandler(st, h)
	liveHandler := handlers.NewLiveHandler(st, h)

The hub is created by main and shared with the draw watcher.
*/
package router
