// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the LottoLens API server.

LottoLens serves lottery analytics: hot, cold and overdue numbers per game,
bell curve number predictions, and live draw announcements over websockets.

# Starting the Server

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -d "postgres://..."

SQLite works too:

	go run . -t sqlite -d "file:lotto.db"

A .env file in the working directory is loaded first when present.

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Connection string; without it stats are unavailable
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - SCAN_PAGE_SIZE (-page-size): Draw history page size (default: 1000)
  - WATCH_SCHEDULE (-watch): Draw watcher schedule (default: @every 1m, "off" disables)
  - RATE_LIMIT_RPS (-rate): Requests per second per client (default: 20, 0 disables)
  - RATE_LIMIT_BURST (-burst): Rate limit burst (default: 40)

# Architecture

  - handlers: HTTP request handlers (predict, stats, draws, live)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - stats: History scan, overdue ranking, aggregation, bell curve
  - hub: Live subscriber registry and broadcast
  - watcher: Scheduled new-draw announcements
  - store: Postgres/SQLite data access
  - metrics: Prometheus instrumentation
  - models: Request/response and domain types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
