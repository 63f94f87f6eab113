// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is shared by Postgres and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Games
CREATE TABLE IF NOT EXISTS games (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    main_max INTEGER NOT NULL DEFAULT 0,
    supp_max INTEGER NOT NULL DEFAULT 0,
    powerball_max INTEGER NOT NULL DEFAULT 0
);

-- Draws
CREATE TABLE IF NOT EXISTS draws (
    id TEXT PRIMARY KEY,
    game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
    draw_number INTEGER NOT NULL,
    draw_date TEXT NOT NULL DEFAULT '',
    UNIQUE (game_id, draw_number)
);

CREATE INDEX IF NOT EXISTS idx_draws_game_number ON draws(game_id, draw_number);

-- Draw results
CREATE TABLE IF NOT EXISTS draw_results (
    id TEXT PRIMARY KEY,
    draw_id TEXT NOT NULL REFERENCES draws(id) ON DELETE CASCADE,
    number INTEGER NOT NULL,
    type TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_draw_results_draw_id ON draw_results(draw_id);

-- Precomputed hot/cold lists (JSON arrays)
CREATE TABLE IF NOT EXISTS hot_cold_numbers (
    game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
    category TEXT NOT NULL,
    hot TEXT NOT NULL DEFAULT '[]',
    cold TEXT NOT NULL DEFAULT '[]',
    PRIMARY KEY (game_id, category)
);

-- Bell curve predictions
CREATE TABLE IF NOT EXISTS bell_curve_predictions (
    id TEXT PRIMARY KEY,
    game_id TEXT NOT NULL,
    predicted_numbers TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bell_curve_predictions_game_id ON bell_curve_predictions(game_id);
`
