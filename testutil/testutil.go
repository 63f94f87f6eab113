// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lottolens/cliparse"
	"github.com/danielhkuo/lottolens/db"
	"github.com/danielhkuo/lottolens/models"
	"github.com/danielhkuo/lottolens/store"
)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// NewTestStore returns a store over a fresh test database
func NewTestStore(t *testing.T) (*sql.DB, *store.Store) {
	t.Helper()
	conn := SetupTestDB(t)
	return conn, store.New(conn, store.TypeSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   ":memory:",
		DatabaseType:  store.TypeSQLite,
		ScanPageSize:  2,
		WatchSchedule: cliparse.WatchOff,
		RateLimitRPS:  0,
		RateBurst:     1,
	}
}

// CreateTestGame inserts a game with the given pool sizes
func CreateTestGame(t *testing.T, s *store.Store, gameID string, mainMax, suppMax, powerballMax int) {
	t.Helper()

	err := s.CreateGame(context.Background(), models.Game{
		ID:           gameID,
		Name:         "Test " + gameID,
		MainMax:      mainMax,
		SuppMax:      suppMax,
		PowerballMax: powerballMax,
	})
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}
}

// AddTestDraw records a draw whose main balls are given by mains and
// returns the draw ID. The draw date is derived from the draw number.
func AddTestDraw(t *testing.T, s *store.Store, gameID string, drawNumber int, mains ...int) string {
	t.Helper()

	results := make([]models.DrawResult, 0, len(mains))
	for _, n := range mains {
		results = append(results, models.DrawResult{Number: n, Type: models.TypeMain})
	}
	return AddTestDrawResults(t, s, gameID, drawNumber, results)
}

// AddTestDrawResults records a draw with arbitrary results
func AddTestDrawResults(t *testing.T, s *store.Store, gameID string, drawNumber int, results []models.DrawResult) string {
	t.Helper()

	date := fmt.Sprintf("2024-%02d-%02d", 1+drawNumber/28%12, 1+drawNumber%28)
	id, err := s.InsertDraw(context.Background(), gameID, drawNumber, date, results)
	if err != nil {
		t.Fatalf("Failed to create test draw: %v", err)
	}
	return id
}

// SetTestHotCold stores the hot/cold lists of one category
func SetTestHotCold(t *testing.T, s *store.Store, gameID string, c models.Category, hot, cold []int) {
	t.Helper()

	if err := s.SetHotCold(context.Background(), gameID, c, models.HotCold{Hot: hot, Cold: cold}); err != nil {
		t.Fatalf("Failed to set hot/cold: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
