package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/ports"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Initialize the preset schema. The DDL is valid for both SQLite and PostgreSQL.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPresetsQuery := `
	CREATE TABLE IF NOT EXISTS route_presets (
		preset_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		vehicles TEXT NOT NULL,
		travel_times TEXT NOT NULL
	);
	`

	createNameIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_presets_name
	ON route_presets(name);
	`

	statements := []string{
		createPresetsQuery,
		createNameIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// One preset as written in a seed file. Routes use the same comma
// separated text form users type in.
type PresetSeed struct {
	PresetID    string `json:"preset_id" yaml:"preset_id"`
	Name        string `json:"name" yaml:"name"`
	Vehicles    string `json:"vehicles" yaml:"vehicles"`
	TravelTimes string `json:"travel_times" yaml:"travel_times"`
}

// Populate the store with presets from a JSON or YAML file (chosen by extension).
// Every row is validated before anything is written.
func SeedFromFile(ctx context.Context, w ports.PresetWriter, path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed presets: read %q: %w", path, err)
	}

	var data []PresetSeed
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(bytes, &data); err != nil {
			return fmt.Errorf("seed presets: parse json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &data); err != nil {
			return fmt.Errorf("seed presets: parse yaml: %w", err)
		}
	default:
		return fmt.Errorf("seed presets: unsupported file type %q", ext)
	}

	presets := make([]*domain.RoutePreset, 0, len(data))
	seen := make(map[string]struct{}, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.PresetID)
		if id == "" {
			return fmt.Errorf("seed presets: item at index %d: preset_id cannot be empty", i+1)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("seed presets: item at index %d: duplicate preset_id %q", i+1, id)
		}
		seen[id] = struct{}{}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = id
		}

		route, err := domain.ParseRoute(item.Vehicles, item.TravelTimes)
		if err != nil {
			return fmt.Errorf("seed presets: item at index %d (%s): %w", i+1, id, err)
		}

		presets = append(presets, &domain.RoutePreset{ID: id, Name: name, Route: route})
	}

	if err := w.UpsertPresets(ctx, presets); err != nil {
		return fmt.Errorf("seed presets: %w", err)
	}

	return nil
}

// scanPreset rebuilds a preset from its stored text form.
func scanPreset(id, name, vehicles, travelTimes string) (*domain.RoutePreset, error) {
	route, err := domain.ParseRoute(vehicles, travelTimes)
	if err != nil {
		return nil, fmt.Errorf("stored preset %q is invalid: %w", id, err)
	}
	return &domain.RoutePreset{ID: id, Name: name, Route: route}, nil
}
