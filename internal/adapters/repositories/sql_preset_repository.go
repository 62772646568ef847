package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/platform/obs"

	"go.uber.org/zap"
)

// SQLPresetRepository is the PostgreSQL-backed implementation of the preset ports.
type SQLPresetRepository struct {
	DB     *sql.DB
	Logger *zap.Logger
}

func NewSQLPresetRepository(db *sql.DB, logger *zap.Logger) *SQLPresetRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLPresetRepository{DB: db, Logger: logger}
}

func (s *SQLPresetRepository) ListPresets(ctx context.Context) (_ []*domain.RoutePreset, err error) {
	defer obs.Time(ctx, s.Logger, "presets.ListPresets")(&err)

	if s.DB == nil {
		return nil, errors.New("sql preset repository: db is nil")
	}

	q := `
	SELECT preset_id, name, vehicles, travel_times
	FROM route_presets
	ORDER BY preset_id;
	`
	rows, err := s.DB.QueryContext(ctx, q)
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

func (s *SQLPresetRepository) GetPreset(ctx context.Context, id string) (_ *domain.RoutePreset, err error) {
	defer obs.Time(ctx, s.Logger, "presets.GetPreset")(&err)

	if s.DB == nil {
		return nil, errors.New("sql preset repository: db is nil")
	}

	q := `
	SELECT name, vehicles, travel_times
	FROM route_presets
	WHERE preset_id = $1;
	`
	var name, vehicles, travel string
	err = s.DB.QueryRowContext(ctx, q, id).Scan(&name, &vehicles, &travel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get preset %q: %w", id, domain.ErrPresetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get preset %q: query: %w", id, err)
	}

	return scanPreset(id, name, vehicles, travel)
}

func (s *SQLPresetRepository) UpsertPresets(ctx context.Context, presets []*domain.RoutePreset) (err error) {
	defer obs.Time(ctx, s.Logger, "presets.UpsertPresets")(&err)

	if s.DB == nil {
		return errors.New("sql preset repository: db is nil")
	}

	if len(presets) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert presets: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := `
	INSERT INTO route_presets (preset_id, name, vehicles, travel_times)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (preset_id) DO UPDATE
	SET name = EXCLUDED.name,
		vehicles = EXCLUDED.vehicles,
		travel_times = EXCLUDED.travel_times;
	`
	for _, p := range presets {
		vehicles, travel := p.Route.Text()
		if _, err := tx.ExecContext(ctx, q, p.ID, p.Name, vehicles, travel); err != nil {
			return fmt.Errorf("upsert presets: insert preset_id=%q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert presets: commit tx: %w", err)
	}

	return nil
}
