// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/danielhkuo/lottolens/models"
	"github.com/danielhkuo/lottolens/stats"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

var ErrNoDraws = errors.New("game has no draws")

var placeholder = regexp.MustCompile(`\$(\d+)`)

// Store reads games and draw history from Postgres or SQLite.
type Store struct {
	db     *sql.DB
	dbType string
}

// New wraps db. dbType selects the placeholder style (TypePostgres or
// TypeSQLite).
func New(db *sql.DB, dbType string) *Store {
	return &Store{db: db, dbType: dbType}
}

// rebind rewrites $N placeholders to ?N for SQLite.
func (s *Store) rebind(query string) string {
	if s.dbType != TypeSQLite {
		return query
	}
	return placeholder.ReplaceAllString(query, "?$1")
}

// unavailable marks a driver error so callers can tell it from a missing game.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", stats.ErrSourceUnavailable, op, err)
}

// FetchGame returns a game's pool sizes.
func (s *Store) FetchGame(ctx context.Context, gameID string) (models.Game, error) {
	var game models.Game
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, name, main_max, supp_max, powerball_max
		FROM games
		WHERE id = $1
	`), gameID).Scan(&game.ID, &game.Name, &game.MainMax, &game.SuppMax, &game.PowerballMax)

	if err == sql.ErrNoRows {
		return models.Game{}, stats.ErrGameNotFound
	}
	if err != nil {
		return models.Game{}, unavailable("query game", err)
	}
	return game, nil
}

// FetchHotCold returns the precomputed hot/cold lists of a game. Rows for
// unknown categories are skipped; a game without rows yields an empty map.
func (s *Store) FetchHotCold(ctx context.Context, gameID string) (models.GameHotCold, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT category, hot, cold
		FROM hot_cold_numbers
		WHERE game_id = $1
	`), gameID)
	if err != nil {
		return nil, unavailable("query hot/cold", err)
	}
	defer rows.Close()

	out := models.GameHotCold{}
	for rows.Next() {
		var tag, hotJSON, coldJSON string
		if err := rows.Scan(&tag, &hotJSON, &coldJSON); err != nil {
			return nil, unavailable("scan hot/cold", err)
		}
		c, ok := models.ParseCategory(tag)
		if !ok {
			continue
		}

		var hc models.HotCold
		if err := json.Unmarshal([]byte(hotJSON), &hc.Hot); err != nil {
			return nil, fmt.Errorf("decode %s hot list: %w", tag, err)
		}
		if err := json.Unmarshal([]byte(coldJSON), &hc.Cold); err != nil {
			return nil, fmt.Errorf("decode %s cold list: %w", tag, err)
		}
		out[c] = hc
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate hot/cold", err)
	}
	return out, nil
}

// FetchDrawsPage returns up to limit draws of a game starting at offset,
// newest first, each with its results.
func (s *Store) FetchDrawsPage(ctx context.Context, gameID string, offset, limit int) ([]models.Draw, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT d.id, d.draw_number, d.draw_date, r.number, r.type
		FROM (
			SELECT id, draw_number, draw_date
			FROM draws
			WHERE game_id = $1
			ORDER BY draw_number DESC
			LIMIT $2 OFFSET $3
		) d
		LEFT JOIN draw_results r ON r.draw_id = d.id
		ORDER BY d.draw_number DESC, r.type, r.number
	`), gameID, limit, offset)
	if err != nil {
		return nil, unavailable("query draws", err)
	}
	defer rows.Close()

	draws := []models.Draw{}
	for rows.Next() {
		var (
			id, date   string
			drawNumber int
			number     sql.NullInt64
			tag        sql.NullString
		)
		if err := rows.Scan(&id, &drawNumber, &date, &number, &tag); err != nil {
			return nil, unavailable("scan draw", err)
		}

		if len(draws) == 0 || draws[len(draws)-1].ID != id {
			draws = append(draws, models.Draw{ID: id, DrawNumber: drawNumber, DrawDate: date})
		}
		if number.Valid && tag.Valid {
			last := &draws[len(draws)-1]
			last.Results = append(last.Results, models.DrawResult{Number: int(number.Int64), Type: tag.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate draws", err)
	}
	return draws, nil
}

// LatestDraw returns the newest draw record of a game.
func (s *Store) LatestDraw(ctx context.Context, gameID string) (models.DrawRecord, error) {
	var rec models.DrawRecord
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT draw_number, draw_date
		FROM draws
		WHERE game_id = $1
		ORDER BY draw_number DESC
		LIMIT 1
	`), gameID).Scan(&rec.DrawNumber, &rec.DrawDate)

	if err == sql.ErrNoRows {
		return models.DrawRecord{}, ErrNoDraws
	}
	if err != nil {
		return models.DrawRecord{}, unavailable("query latest draw", err)
	}
	return rec, nil
}

// LatestDraws returns the newest draw of every game that has draws.
func (s *Store) LatestDraws(ctx context.Context) ([]models.LatestDraw, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.game_id, d.draw_number, d.draw_date
		FROM draws d
		JOIN (
			SELECT game_id, MAX(draw_number) AS draw_number
			FROM draws
			GROUP BY game_id
		) m ON m.game_id = d.game_id AND m.draw_number = d.draw_number
		ORDER BY d.game_id
	`)
	if err != nil {
		return nil, unavailable("query latest draws", err)
	}
	defer rows.Close()

	latest := []models.LatestDraw{}
	for rows.Next() {
		var ld models.LatestDraw
		if err := rows.Scan(&ld.GameID, &ld.DrawNumber, &ld.DrawDate); err != nil {
			return nil, unavailable("scan latest draw", err)
		}
		latest = append(latest, ld)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate latest draws", err)
	}
	return latest, nil
}

// SavePrediction records a bell curve prediction.
func (s *Store) SavePrediction(ctx context.Context, gameID string, numbers []int) error {
	payload, err := json.Marshal(numbers)
	if err != nil {
		return fmt.Errorf("encode prediction: %w", err)
	}

	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO bell_curve_predictions (id, game_id, predicted_numbers)
		VALUES ($1, $2, $3)
	`), uuid.NewString(), gameID, string(payload))
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

// CreateGame inserts a game.
func (s *Store) CreateGame(ctx context.Context, game models.Game) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO games (id, name, main_max, supp_max, powerball_max)
		VALUES ($1, $2, $3, $4, $5)
	`), game.ID, game.Name, game.MainMax, game.SuppMax, game.PowerballMax)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

// InsertDraw records a draw and its results in one transaction and returns
// the new draw ID.
func (s *Store) InsertDraw(ctx context.Context, gameID string, drawNumber int, drawDate string, results []models.DrawResult) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin draw insert: %w", err)
	}
	defer tx.Rollback()

	drawID := uuid.NewString()
	_, err = tx.ExecContext(ctx, s.rebind(`
		INSERT INTO draws (id, game_id, draw_number, draw_date)
		VALUES ($1, $2, $3, $4)
	`), drawID, gameID, drawNumber, drawDate)
	if err != nil {
		return "", fmt.Errorf("insert draw: %w", err)
	}

	for _, r := range results {
		_, err = tx.ExecContext(ctx, s.rebind(`
			INSERT INTO draw_results (id, draw_id, number, type)
			VALUES ($1, $2, $3, $4)
		`), uuid.NewString(), drawID, r.Number, r.Type)
		if err != nil {
			return "", fmt.Errorf("insert draw result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit draw insert: %w", err)
	}
	return drawID, nil
}

// SetHotCold stores the hot/cold lists of one category, replacing any
// previous lists.
func (s *Store) SetHotCold(ctx context.Context, gameID string, c models.Category, hc models.HotCold) error {
	hot, err := json.Marshal(nonNil(hc.Hot))
	if err != nil {
		return fmt.Errorf("encode hot list: %w", err)
	}
	cold, err := json.Marshal(nonNil(hc.Cold))
	if err != nil {
		return fmt.Errorf("encode cold list: %w", err)
	}

	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO hot_cold_numbers (game_id, category, hot, cold)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (game_id, category) DO UPDATE SET hot = excluded.hot, cold = excluded.cold
	`), gameID, c.String(), string(hot), string(cold))
	if err != nil {
		return fmt.Errorf("upsert hot/cold: %w", err)
	}
	return nil
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
