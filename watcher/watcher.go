// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/danielhkuo/lottolens/models"
)

// pollTimeout bounds a single scheduled poll.
const pollTimeout = 30 * time.Second

// LatestSource lists the newest draw of every game.
type LatestSource interface {
	LatestDraws(ctx context.Context) ([]models.LatestDraw, error)
}

// Broadcaster delivers a message to the live subscribers of a game.
type Broadcaster interface {
	Broadcast(gameID string, msg any) int
}

// Watcher announces newly imported draws to live subscribers.
type Watcher struct {
	source LatestSource
	out    Broadcaster
	logger *slog.Logger

	mu     sync.Mutex
	seen   map[string]int
	seeded bool
	cron   *cron.Cron
}

// New returns a Watcher. A nil logger uses slog.Default().
func New(source LatestSource, out Broadcaster, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		source: source,
		out:    out,
		logger: logger,
		seen:   make(map[string]int),
	}
}

// Poll reads the latest draw of every game and broadcasts the record of each
// game whose draw number grew since the previous poll. The first successful
// poll only records the current state. It returns the number of games
// announced.
func (w *Watcher) Poll(ctx context.Context) (int, error) {
	latest, err := w.source.LatestDraws(ctx)
	if err != nil {
		return 0, fmt.Errorf("poll latest draws: %w", err)
	}

	w.mu.Lock()
	var fresh []models.LatestDraw
	for _, ld := range latest {
		if prev, ok := w.seen[ld.GameID]; w.seeded && (!ok || ld.DrawNumber > prev) {
			fresh = append(fresh, ld)
		}
		if ld.DrawNumber > w.seen[ld.GameID] {
			w.seen[ld.GameID] = ld.DrawNumber
		}
	}
	w.seeded = true
	w.mu.Unlock()

	for _, ld := range fresh {
		delivered := w.out.Broadcast(ld.GameID, ld.DrawRecord)
		w.logger.Info("new draw announced",
			"game_id", ld.GameID,
			"draw_number", ld.DrawNumber,
			"delivered", delivered,
		)
	}
	return len(fresh), nil
}

// Start runs Poll on the given cron schedule (standard five-field syntax or
// descriptors such as "@every 1m") until Stop is called.
func (w *Watcher) Start(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()
		if _, err := w.Poll(ctx); err != nil {
			w.logger.Warn("draw watcher poll failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", schedule, err)
	}

	w.mu.Lock()
	w.cron = c
	w.mu.Unlock()

	c.Start()
	w.logger.Info("draw watcher started", "schedule", schedule)
	return nil
}

// Stop halts the schedule and waits for a running poll to finish.
func (w *Watcher) Stop() {
	w.mu.Lock()
	c := w.cron
	w.cron = nil
	w.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}
