package repositories

import (
	"context"
	"database/sql"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/platform/db"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(conn))
	return conn
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSqlitePresetRepositorySeedJSON(t *testing.T) {
	ctx := context.Background()
	repo := NewSqlitePresetRepository(openTestDB(t))

	path := writeFile(t, "presets.json", `[
		{"preset_id": "single", "name": "Single repair", "vehicles": "M", "travel_times": ""},
		{"preset_id": "example", "name": "Example route", "vehicles": "s,F,SF,FF", "travel_times": "2,4,3"}
	]`)
	require.NoError(t, SeedFromFile(ctx, repo, path))

	presets, err := repo.ListPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "example", presets[0].ID)
	assert.Equal(t, "single", presets[1].ID)

	assert.Equal(t, []string{"S", "F", "SF", "FF"}, presets[0].Route.Vehicles)
	assert.Equal(t, []int{2, 4, 3}, presets[0].Route.TravelTimes)
	assert.Empty(t, presets[1].Route.TravelTimes)

	got, err := repo.GetPreset(ctx, "single")
	require.NoError(t, err)
	assert.Equal(t, "Single repair", got.Name)
	assert.Equal(t, []string{"M"}, got.Route.Vehicles)
}

func TestSqlitePresetRepositorySeedYAMLReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewSqlitePresetRepository(openTestDB(t))

	first := writeFile(t, "presets.yaml", `
- preset_id: loop
  name: Loop
  vehicles: S,F
  travel_times: "7"
`)
	require.NoError(t, SeedFromFile(ctx, repo, first))

	second := writeFile(t, "presets.yml", `
- preset_id: loop
  vehicles: M,M,M
  travel_times: "1,1"
`)
	require.NoError(t, SeedFromFile(ctx, repo, second))

	got, err := repo.GetPreset(ctx, "loop")
	require.NoError(t, err)
	assert.Equal(t, "loop", got.Name, "empty name falls back to id")
	assert.Equal(t, []string{"M", "M", "M"}, got.Route.Vehicles)
	assert.Equal(t, []int{1, 1}, got.Route.TravelTimes)
}

func TestSqlitePresetRepositoryGetMissing(t *testing.T) {
	repo := NewSqlitePresetRepository(openTestDB(t))

	_, err := repo.GetPreset(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrPresetNotFound)
}

func TestSeedFromFileRejectsInvalidRows(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "cardinality mismatch",
			file:    "bad.json",
			content: `[{"preset_id": "a", "vehicles": "S,F", "travel_times": "1,2"}]`,
			wantErr: domain.ErrCardinalityMismatch,
		},
		{
			name:    "bad task letter",
			file:    "bad.json",
			content: `[{"preset_id": "a", "vehicles": "S,Z", "travel_times": "1"}]`,
			wantErr: domain.ErrInvalidRoute,
		},
		{
			name:    "missing id",
			file:    "bad.yaml",
			content: "- vehicles: S\n",
		},
		{
			name:    "duplicate id",
			file:    "bad.json",
			content: `[{"preset_id": "a", "vehicles": "S"}, {"preset_id": "a", "vehicles": "F"}]`,
		},
		{
			name:    "unsupported extension",
			file:    "bad.txt",
			content: "S",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMemoryPresetRepository()
			err := SeedFromFile(ctx, repo, writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			presets, listErr := repo.ListPresets(ctx)
			require.NoError(t, listErr)
			assert.Empty(t, presets, "nothing is written when a row is invalid")
		})
	}
}

func TestSeedFromFileMissingFile(t *testing.T) {
	err := SeedFromFile(context.Background(), NewMemoryPresetRepository(), filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}
