package ports

import (
	"context"
	"moped-route-service/internal/domain"
)

// Port: read access to stored route presets.
type PresetRepository interface {
	// Return all presets ordered by id.
	ListPresets(ctx context.Context) ([]*domain.RoutePreset, error)
	// Return one preset, or an error matching domain.ErrPresetNotFound.
	GetPreset(ctx context.Context, id string) (*domain.RoutePreset, error)
}

// Port: write access used when seeding presets.
type PresetWriter interface {
	// Insert or replace presets by id.
	UpsertPresets(ctx context.Context, presets []*domain.RoutePreset) error
}

// A preset store that can be both read and seeded.
type PresetStore interface {
	PresetRepository
	PresetWriter
}
