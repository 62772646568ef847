package services

import (
	"context"
	"errors"
	"fmt"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/ports"
	"strings"
)

// CalculatePreset loads a stored route preset and calculates it.
func CalculatePreset(
	ctx context.Context,
	repo ports.PresetRepository,
	presetID string,
) (*domain.RoutePreset, *domain.TotalTimeResult, error) {
	if repo == nil {
		return nil, nil, errors.New("calculate preset: repository must be non-nil")
	}

	id := strings.TrimSpace(presetID)
	if id == "" {
		return nil, nil, errors.New("calculate preset: preset id must be non-empty")
	}

	preset, err := repo.GetPreset(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("calculate preset: %q: %w", id, err)
	}

	return preset, CalculateRoute(preset.Route), nil
}
