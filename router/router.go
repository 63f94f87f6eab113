// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/lottolens/cliparse"
	"github.com/danielhkuo/lottolens/handlers"
	"github.com/danielhkuo/lottolens/hub"
	"github.com/danielhkuo/lottolens/metrics"
	"github.com/danielhkuo/lottolens/middleware"
	"github.com/danielhkuo/lottolens/stats"
	"github.com/danielhkuo/lottolens/store"
)

// NewRouter registers every route. db may be nil to run without a data source.
func NewRouter(db *sql.DB, h *hub.Hub, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	var st *store.Store
	var src stats.Source
	if db != nil {
		st = store.New(db, cfg.DatabaseType)
		src = st
	}

	// Initialize handlers
	predictHandler := handlers.NewPredictHandler(st)
	statsHandler := handlers.NewStatsHandler(stats.NewAggregator(src, cfg.ScanPageSize))
	drawsHandler := handlers.NewDrawsHandler(st, h)
	liveHandler := handlers.NewLiveHandler(st, h)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", metrics.Handler())

	// Prediction
	mux.HandleFunc("POST /predict", middleware.WithLogging(predictHandler.Predict))

	// Game stats and draws
	mux.HandleFunc("GET /games/{id}/stats", middleware.WithLogging(statsHandler.GetStats))
	mux.HandleFunc("GET /games/{id}/draws/latest", middleware.WithLogging(drawsHandler.GetLatest))
	mux.HandleFunc("POST /games/{id}/notify", middleware.WithLogging(drawsHandler.Notify))

	// Live draw announcements
	mux.HandleFunc("GET /ws/draws/{id}", middleware.WithLogging(liveHandler.Subscribe))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lottolens API v1"))
	})

	return mux
}
