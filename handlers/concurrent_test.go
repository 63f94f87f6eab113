// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/lottolens/hub"
	"github.com/danielhkuo/lottolens/models"
	"github.com/danielhkuo/lottolens/stats"
	"github.com/danielhkuo/lottolens/testutil"
)

// TestConcurrentStatsRequests verifies that simultaneous stats requests for
// the same game all see the same answer
func TestConcurrentStatsRequests(t *testing.T) {
	_, st := testutil.NewTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewStatsHandler(stats.NewAggregator(st, cfg.ScanPageSize))

	testutil.CreateTestGame(t, st, "oz", 10, 0, 0)
	for n := 1; n <= 9; n++ {
		testutil.AddTestDraw(t, st, "oz", n, n)
	}

	numRequests := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest("GET", "/games/oz/stats?percent=30", nil)
			req.SetPathValue("id", "oz")
			w := httptest.NewRecorder()

			handler.GetStats(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
				return
			}

			var resp models.GameStats
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Errorf("Failed to decode response: %v", err)
				return
			}
			// ball 10 never drawn, then 1 and 2 are the oldest
			if !reflect.DeepEqual(resp["main_overdue"], []int{10, 1, 2}) {
				t.Errorf("Expected [10 1 2], got %v", resp["main_overdue"])
				return
			}
			successCount.Add(1)
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numRequests {
		t.Errorf("Expected %d successful requests, got %d", numRequests, successCount.Load())
	}
}

// TestConcurrentNotifications verifies that overlapping announcements reach
// every subscriber exactly once each
func TestConcurrentNotifications(t *testing.T) {
	h := hub.New(nil)
	handler := NewDrawsHandler(nil, h)

	numSubscribers := 5
	conns := make([]*recordingConn, numSubscribers)
	for i := range conns {
		conns[i] = &recordingConn{}
		h.Connect("oz", conns[i])
	}

	numNotifications := 20
	var delivered atomic.Int32
	var wg sync.WaitGroup

	for i := 1; i <= numNotifications; i++ {
		wg.Add(1)
		go func(drawNumber int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/games/oz/notify", models.NotifyRequest{DrawNumber: drawNumber}, nil)
			req.SetPathValue("id", "oz")
			w := httptest.NewRecorder()

			handler.Notify(w, req)

			var resp models.NotifyResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Errorf("Failed to decode response: %v", err)
				return
			}
			delivered.Add(int32(resp.Delivered))
		}(i)
	}

	wg.Wait()

	if got := int(delivered.Load()); got != numSubscribers*numNotifications {
		t.Errorf("Expected %d deliveries, got %d", numSubscribers*numNotifications, got)
	}
	for i, c := range conns {
		if len(c.messages) != numNotifications {
			t.Errorf("subscriber %d: expected %d messages, got %d", i, numNotifications, len(c.messages))
		}
	}
}
