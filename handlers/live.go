// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/lottolens/hub"
	"github.com/danielhkuo/lottolens/store"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	// Widgets are embedded on third-party pages
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// wsConn adapts a websocket connection to hub.Conn.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

type LiveHandler struct {
	store *store.Store
	hub   *hub.Hub
}

// NewLiveHandler returns a LiveHandler. st may be nil, in which case no
// draw record is sent on connect.
func NewLiveHandler(st *store.Store, h *hub.Hub) *LiveHandler {
	return &LiveHandler{store: st, hub: h}
}

// Subscribe handles GET /ws/draws/{id}
// Upgrades to a websocket, sends the latest draw record and keeps the
// subscriber registered until the client goes away.
func (h *LiveHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		slog.Warn("websocket upgrade failed", "game_id", gameID, "error", err)
		return
	}
	ws.SetReadLimit(maxMessageSize)
	conn := &wsConn{conn: ws}

	if h.store != nil {
		rec, err := h.store.LatestDraw(r.Context(), gameID)
		switch {
		case err == nil:
			if err := conn.WriteJSON(rec); err != nil {
				slog.Warn("failed to send latest draw", "game_id", gameID, "error", err)
				conn.Close()
				return
			}
		case errors.Is(err, store.ErrNoDraws):
		default:
			slog.Error("failed to query latest draw", "game_id", gameID, "error", err)
		}
	}

	h.hub.Connect(gameID, conn)
	defer func() {
		h.hub.Disconnect(gameID, conn)
		conn.Close()
	}()

	// Inbound frames carry nothing; read until the client disconnects
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
