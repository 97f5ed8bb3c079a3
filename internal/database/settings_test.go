package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-tour-planner/internal/models"
)

func TestSettingsDefaults(t *testing.T) {
	db := setupTestDB(t)

	settings, err := db.Settings().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestSettingsUpdateAndGet(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	updated := &models.Settings{
		FloorPenalty:  75.5,
		MaxPasses:     10,
		NumFloors:     4,
		ShopsPerFloor: 8,
		Seed:          2024,
	}
	require.NoError(t, db.Settings().Update(ctx, updated))

	settings, err := db.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, settings)
}

func TestSettingsPartialDefaults(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Only one key present: the rest fall back to defaults
	_, err := db.conn.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES ('floor_penalty', '12.5')`)
	require.NoError(t, err)

	settings, err := db.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.5, settings.FloorPenalty)
	assert.Equal(t, 20, settings.MaxPasses)
}
