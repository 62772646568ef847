package services

import (
	"context"
	"moped-route-service/internal/adapters/repositories"
	"moped-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePreset(t *testing.T) {
	route, err := domain.ParseRoute("S,F,SF,FF", "2,4,3")
	require.NoError(t, err)

	repo := repositories.NewMemoryPresetRepository(&domain.RoutePreset{
		ID:    "example",
		Name:  "Example route",
		Route: route,
	})

	preset, result, err := CalculatePreset(context.Background(), repo, " example ")
	require.NoError(t, err)
	assert.Equal(t, "Example route", preset.Name)
	assert.Equal(t, 37, result.TotalMinutes)
}

func TestCalculatePresetNotFound(t *testing.T) {
	repo := repositories.NewMemoryPresetRepository()

	_, _, err := CalculatePreset(context.Background(), repo, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPresetNotFound)
}

func TestCalculatePresetRequiresID(t *testing.T) {
	repo := repositories.NewMemoryPresetRepository()

	_, _, err := CalculatePreset(context.Background(), repo, "  ")
	assert.Error(t, err)
}
