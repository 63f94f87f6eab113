// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package watcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/lottolens/models"
)

type fakeSource struct {
	mu     sync.Mutex
	latest []models.LatestDraw
	err    error
	calls  int
}

func (f *fakeSource) LatestDraws(ctx context.Context) ([]models.LatestDraw, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.LatestDraw(nil), f.latest...), nil
}

func (f *fakeSource) set(latest ...models.LatestDraw) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest = latest
}

func (f *fakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type sent struct {
	gameID string
	msg    any
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	sent []sent
}

func (f *fakeBroadcaster) Broadcast(gameID string, msg any) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sent{gameID, msg})
	return 1
}

func latest(gameID string, drawNumber int) models.LatestDraw {
	return models.LatestDraw{
		GameID:     gameID,
		DrawRecord: models.DrawRecord{DrawNumber: drawNumber, DrawDate: "2024-05-01"},
	}
}

func TestPoll(t *testing.T) {
	src := &fakeSource{}
	out := &fakeBroadcaster{}
	w := New(src, out, nil)
	ctx := context.Background()

	// First poll seeds without announcing
	src.set(latest("oz", 10), latest("pb", 20))
	n, err := w.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, out.sent)

	// Nothing changed
	n, err = w.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// One game advances
	src.set(latest("oz", 11), latest("pb", 20))
	n, err = w.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, out.sent, 1)
	assert.Equal(t, "oz", out.sent[0].gameID)
	assert.Equal(t, models.DrawRecord{DrawNumber: 11, DrawDate: "2024-05-01"}, out.sent[0].msg)

	// A lower number (e.g. a deleted draw) is not announced
	src.set(latest("oz", 9), latest("pb", 20))
	n, err = w.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// A game that gets its first draw after seeding is announced
	src.set(latest("oz", 11), latest("pb", 20), latest("lotto", 1))
	n, err = w.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "lotto", out.sent[len(out.sent)-1].gameID)
}

func TestPoll_Error(t *testing.T) {
	boom := errors.New("connection refused")
	src := &fakeSource{err: boom}
	out := &fakeBroadcaster{}
	w := New(src, out, nil)

	_, err := w.Poll(context.Background())
	assert.ErrorIs(t, err, boom)

	// A failed poll does not count as seeding
	src.err = nil
	src.set(latest("oz", 3))
	n, err := w.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, out.sent)
}

func TestStart(t *testing.T) {
	src := &fakeSource{}
	w := New(src, &fakeBroadcaster{}, nil)

	require.NoError(t, w.Start("@every 1s"))
	defer w.Stop()

	require.Eventually(t, func() bool { return src.Calls() >= 1 }, 5*time.Second, 50*time.Millisecond)
}

func TestStart_InvalidSchedule(t *testing.T) {
	w := New(&fakeSource{}, &fakeBroadcaster{}, nil)

	assert.Error(t, w.Start("every now and then"))
	w.Stop()
}
