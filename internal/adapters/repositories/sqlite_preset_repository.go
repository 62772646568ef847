package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"moped-route-service/internal/domain"
)

// SQLite-backed implementation of the preset ports.
type SqlitePresetRepository struct{ DB *sql.DB }

func NewSqlitePresetRepository(db *sql.DB) *SqlitePresetRepository {
	return &SqlitePresetRepository{DB: db}
}

// Return all presets stored in the database.
func (s *SqlitePresetRepository) ListPresets(ctx context.Context) ([]*domain.RoutePreset, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite preset repository: DB is nil")
	}

	query := `
	SELECT
		preset_id,
		name,
		vehicles,
		travel_times
	FROM route_presets
	ORDER BY preset_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list presets: query route_presets table: %w", err)
	}
	defer rows.Close()

	presets := make([]*domain.RoutePreset, 0, 16)
	for rows.Next() {
		var id, name, vehicles, travel string
		if err := rows.Scan(&id, &name, &vehicles, &travel); err != nil {
			return nil, fmt.Errorf("list presets: scan row: %w", err)
		}
		p, err := scanPreset(id, name, vehicles, travel)
		if err != nil {
			return nil, fmt.Errorf("list presets: %w", err)
		}
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list presets: row iteration: %w", err)
	}

	return presets, nil
}

func (s *SqlitePresetRepository) GetPreset(ctx context.Context, id string) (*domain.RoutePreset, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite preset repository: DB is nil")
	}

	query := `
	SELECT
		name,
		vehicles,
		travel_times
	FROM route_presets
	WHERE preset_id = ?;
	`
	var name, vehicles, travel string
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&name, &vehicles, &travel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get preset %q: %w", id, domain.ErrPresetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get preset %q: query: %w", id, err)
	}

	return scanPreset(id, name, vehicles, travel)
}

// Insert or replace presets in a single transaction.
func (s *SqlitePresetRepository) UpsertPresets(ctx context.Context, presets []*domain.RoutePreset) error {
	if s.DB == nil {
		return errors.New("sqlite preset repository: DB is nil")
	}

	if len(presets) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert presets: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO route_presets (
		preset_id,
		name,
		vehicles,
		travel_times
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("upsert presets: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range presets {
		vehicles, travel := p.Route.Text()
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, vehicles, travel); err != nil {
			return fmt.Errorf("upsert presets: insert preset_id=%q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert presets: commit tx: %w", err)
	}

	return nil
}
