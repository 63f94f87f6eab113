// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandler_LabelsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /games/{id}/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := InstrumentHandler(mux)

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "GET /games/{id}/stats", "404"))

	for _, id := range []string{"oz", "pb", "sat"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/games/"+id+"/stats", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "GET /games/{id}/stats", "404"))
	assert.Equal(t, 3.0, after-before)
}

func TestInstrumentHandler_Unmatched(t *testing.T) {
	h := InstrumentHandler(http.NewServeMux())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/nowhere", nil))

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	assert.Equal(t, 1.0, after-before)
}

func TestSubscriberGauge(t *testing.T) {
	before := testutil.ToFloat64(liveSubscribers)

	SubscriberAdded()
	SubscriberAdded()
	SubscriberRemoved()

	assert.Equal(t, before+1, testutil.ToFloat64(liveSubscribers))
	SubscriberRemoved()
}

func TestRecordDelivery(t *testing.T) {
	okBefore := testutil.ToFloat64(broadcastDeliveries.WithLabelValues("ok"))
	failBefore := testutil.ToFloat64(broadcastDeliveries.WithLabelValues("failed"))

	RecordDelivery(true)
	RecordDelivery(false)
	RecordDelivery(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(broadcastDeliveries.WithLabelValues("ok"))-okBefore)
	assert.Equal(t, 2.0, testutil.ToFloat64(broadcastDeliveries.WithLabelValues("failed"))-failBefore)
}

type hijackableRecorder struct {
	*httptest.ResponseRecorder
	hijacked bool
}

func (h *hijackableRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h.hijacked = true
	return nil, nil, nil
}

func TestStatusRecorder_Hijack(t *testing.T) {
	inner := &hijackableRecorder{ResponseRecorder: httptest.NewRecorder()}
	rec := &statusRecorder{ResponseWriter: inner, status: http.StatusOK}

	_, _, err := rec.Hijack()
	require.NoError(t, err)
	assert.True(t, inner.hijacked)

	plain := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	_, _, err = plain.Hijack()
	assert.Error(t, err)
}
