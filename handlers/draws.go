// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lottolens/hub"
	"github.com/danielhkuo/lottolens/middleware"
	"github.com/danielhkuo/lottolens/models"
	"github.com/danielhkuo/lottolens/store"
)

type DrawsHandler struct {
	store *store.Store
	hub   *hub.Hub
}

// NewDrawsHandler returns a DrawsHandler. st may be nil.
func NewDrawsHandler(st *store.Store, h *hub.Hub) *DrawsHandler {
	return &DrawsHandler{store: st, hub: h}
}

// GetLatest handles GET /games/{id}/draws/latest
func (h *DrawsHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if h.store == nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Data source unavailable")
		return
	}

	rec, err := h.store.LatestDraw(r.Context(), gameID)
	if errors.Is(err, store.ErrNoDraws) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No draws for game")
		return
	}
	if err != nil {
		slog.Error("failed to query latest draw", "game_id", gameID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
}

// Notify handles POST /games/{id}/notify
// Pushes the draw number to every live subscriber of the game.
func (h *DrawsHandler) Notify(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	if gameID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.NotifyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.DrawNumber <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "draw_number must be positive")
		return
	}

	delivered := h.hub.Notify(gameID, req.DrawNumber)
	slog.Info("draw announced", "game_id", gameID, "draw_number", req.DrawNumber, "delivered", delivered)

	middleware.JSONResponse(w, http.StatusOK, models.NotifyResponse{Delivered: delivered})
}
