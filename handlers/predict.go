// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/lottolens/middleware"
	"github.com/danielhkuo/lottolens/models"
	"github.com/danielhkuo/lottolens/stats"
	"github.com/danielhkuo/lottolens/store"
)

type PredictHandler struct {
	store *store.Store
}

// NewPredictHandler returns a PredictHandler. st may be nil, in which case
// predictions are not recorded.
func NewPredictHandler(st *store.Store) *PredictHandler {
	return &PredictHandler{store: st}
}

// Predict handles POST /predict?low_pct=&high_pct=
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req models.PredictRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.GameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "game_id is required")
		return
	}

	lowPct, err := queryFloat(r, "low_pct", stats.DefaultLowPct)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "low_pct must be a number")
		return
	}
	highPct, err := queryFloat(r, "high_pct", stats.DefaultHighPct)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "high_pct must be a number")
		return
	}

	predicted, err := stats.PredictBellCurve(req.Draws, lowPct, highPct)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Recording is best-effort; the caller gets the prediction regardless
	if h.store != nil {
		if err := h.store.SavePrediction(r.Context(), req.GameID, predicted); err != nil {
			slog.Error("failed to record prediction", "game_id", req.GameID, "error", err)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.PredictResponse{PredictedNumbers: predicted})
}

func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}
