// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store reads games, hot/cold lists and draw history from Postgres
// or SQLite and implements stats.Source. Driver failures are wrapped with
// stats.ErrSourceUnavailable; a missing game is stats.ErrGameNotFound.
package store
