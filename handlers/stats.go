// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/lottolens/middleware"
	"github.com/danielhkuo/lottolens/stats"
)

// DefaultPercent is the group size used when the request omits percent.
const DefaultPercent = 20

type StatsHandler struct {
	aggregator *stats.Aggregator
}

func NewStatsHandler(agg *stats.Aggregator) *StatsHandler {
	return &StatsHandler{aggregator: agg}
}

// GetStats handles GET /games/{id}/stats?percent=
// Returns hot, cold and overdue numbers for every category the game defines.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	percent := DefaultPercent
	if s := r.URL.Query().Get("percent"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil || p < 1 || p > 100 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "percent must be an integer between 1 and 100")
			return
		}
		percent = p
	}

	result, err := h.aggregator.Aggregate(r.Context(), gameID, percent)
	switch {
	case err == nil:
		middleware.JSONResponse(w, http.StatusOK, result)
	case errors.Is(err, stats.ErrGameNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
	case errors.Is(err, stats.ErrSourceUnavailable):
		slog.Error("stats source unavailable", "game_id", gameID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Data source unavailable")
	default:
		slog.Error("failed to aggregate stats", "game_id", gameID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
