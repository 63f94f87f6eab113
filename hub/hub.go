// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/lottolens/metrics"
	"github.com/danielhkuo/lottolens/models"
)

// Conn is a live subscriber connection. Conns are matched by ==, so
// implementations should be pointer types. WriteJSON must be safe for
// concurrent use; broadcasts for the same game may overlap.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

type subscriber struct {
	id   uuid.UUID
	conn Conn
}

// Hub fans draw notifications out to the live subscribers of each game.
type Hub struct {
	mu     sync.RWMutex
	games  map[string][]*subscriber
	logger *slog.Logger
}

// New returns an empty Hub. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		games:  make(map[string][]*subscriber),
		logger: logger,
	}
}

// Connect registers conn as a subscriber of gameID.
func (h *Hub) Connect(gameID string, conn Conn) {
	sub := &subscriber{id: uuid.New(), conn: conn}

	h.mu.Lock()
	h.games[gameID] = append(h.games[gameID], sub)
	h.mu.Unlock()

	metrics.SubscriberAdded()
	h.logger.Info("live subscriber connected", "game_id", gameID, "subscriber_id", sub.id)
}

// Disconnect removes conn from gameID. Removing a conn that is not
// registered, for example one already pruned by a failed broadcast, is a
// no-op.
func (h *Hub) Disconnect(gameID string, conn Conn) {
	for _, sub := range h.remove(gameID, conn) {
		h.logger.Info("live subscriber disconnected", "game_id", gameID, "subscriber_id", sub.id)
	}
}

// Broadcast delivers msg to every current subscriber of gameID and returns
// the number of successful deliveries. Subscribers that fail are removed
// and closed, along with any other registration of the same conn; their
// errors never reach the caller. Subscribers that join
// while a broadcast is in flight may miss it.
func (h *Hub) Broadcast(gameID string, msg any) int {
	h.mu.RLock()
	snapshot := make([]*subscriber, len(h.games[gameID]))
	copy(snapshot, h.games[gameID])
	h.mu.RUnlock()

	delivered := 0
	for _, sub := range snapshot {
		if err := sub.conn.WriteJSON(msg); err != nil {
			metrics.RecordDelivery(false)
			h.logger.Warn("dropping live subscriber after failed send",
				"game_id", gameID,
				"subscriber_id", sub.id,
				"error", err,
			)
			if len(h.remove(gameID, sub.conn)) > 0 {
				sub.conn.Close()
			}
			continue
		}
		metrics.RecordDelivery(true)
		delivered++
	}
	return delivered
}

// Notify announces a new draw number to the subscribers of gameID.
func (h *Hub) Notify(gameID string, drawNumber int) int {
	return h.Broadcast(gameID, models.DrawMessage{DrawNumber: drawNumber})
}

// Subscribers returns the number of live subscribers of gameID.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// remove drops every registration of conn under gameID and returns them.
func (h *Hub) remove(gameID string, conn Conn) []*subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	var removed []*subscriber
	kept := slices.DeleteFunc(h.games[gameID], func(sub *subscriber) bool {
		if sub.conn != conn {
			return false
		}
		removed = append(removed, sub)
		return true
	})
	if len(removed) == 0 {
		return nil
	}
	if len(kept) == 0 {
		delete(h.games, gameID)
	} else {
		h.games[gameID] = kept
	}
	for range removed {
		metrics.SubscriberRemoved()
	}
	return removed
}
