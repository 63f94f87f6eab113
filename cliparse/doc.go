// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (optional)
  - DatabaseType: postgres or sqlite (default: postgres)
  - ScanPageSize: Draws fetched per history page (default: 1000)
  - WatchSchedule: Cron schedule of the draw watcher (default: @every 1m)
  - RateLimitRPS: Requests per second per client (default: 20)
  - RateBurst: Rate limit burst (default: 40)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-page-size  History page size
	-watch      Watcher schedule, or "off"
	-rate       Requests per second per client, 0 disables
	-burst      Rate limit burst

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	SCAN_PAGE_SIZE   → -page-size
	WATCH_SCHEDULE   → -watch
	RATE_LIMIT_RPS   → -rate
	RATE_LIMIT_BURST → -burst

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error when:

  - a numeric value does not parse
  - DatabaseType is neither postgres nor sqlite
  - ScanPageSize is not positive

An empty DatabaseURL is not an error; the server then runs without a data
source.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, h, cfg)
*/
package cliparse
