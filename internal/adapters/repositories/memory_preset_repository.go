package repositories

import (
	"context"
	"fmt"
	"moped-route-service/internal/domain"
	"slices"
	"sort"
	"sync"
)

// In-memory implementation of the preset ports. The zero value is ready to use.
// Presets are copied on the way in and out.
type MemoryPresetRepository struct {
	mu sync.RWMutex
	m  map[string]*domain.RoutePreset
}

func NewMemoryPresetRepository(presets ...*domain.RoutePreset) *MemoryPresetRepository {
	m := make(map[string]*domain.RoutePreset, len(presets))
	for _, p := range presets {
		m[p.ID] = clonePreset(p)
	}
	return &MemoryPresetRepository{m: m}
}

func (r *MemoryPresetRepository) ListPresets(ctx context.Context) ([]*domain.RoutePreset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.RoutePreset, 0, len(r.m))
	for _, p := range r.m {
		out = append(out, clonePreset(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryPresetRepository) GetPreset(ctx context.Context, id string) (*domain.RoutePreset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.m[id]
	if !ok {
		return nil, fmt.Errorf("get preset %q: %w", id, domain.ErrPresetNotFound)
	}
	return clonePreset(p), nil
}

func (r *MemoryPresetRepository) UpsertPresets(ctx context.Context, presets []*domain.RoutePreset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.m == nil {
		r.m = make(map[string]*domain.RoutePreset, len(presets))
	}
	for _, p := range presets {
		r.m[p.ID] = clonePreset(p)
	}
	return nil
}

func clonePreset(p *domain.RoutePreset) *domain.RoutePreset {
	c := *p
	c.Route.Vehicles = slices.Clone(p.Route.Vehicles)
	c.Route.TravelTimes = slices.Clone(p.Route.TravelTimes)
	return &c
}
