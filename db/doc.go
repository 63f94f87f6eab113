// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on Postgres and SQLite.

# Tables

  - games: per-category pool sizes
  - draws: one row per draw, unique per (game_id, draw_number)
  - draw_results: drawn balls tagged main, supplementary or powerball
  - hot_cold_numbers: precomputed hot/cold JSON arrays per game and category
  - bell_curve_predictions: best-effort log of /predict results

# Relationships

	games 1──* draws
	draws 1──* draw_results
	games 1──* hot_cold_numbers
*/
package db
