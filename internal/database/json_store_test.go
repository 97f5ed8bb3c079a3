package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-tour-planner/internal/models"
)

func TestJSONStoreSeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mall_coordinates.json")

	store, err := NewJSONStore(path, sampleShops())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	shops, err := store.Shops().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleShops(), shops)

	// The seed must also have been written out
	assert.FileExists(t, path)
}

func TestJSONStoreReadsLegacyFormat(t *testing.T) {
	// Exactly the flat array format the original generator wrote
	legacy := `[
    {
        "name": "Shop_1_1",
        "floor": 1,
        "x": 43.08,
        "y": 25.89
    },
    {
        "name": "Shop_2_1",
        "floor": 2,
        "x": 22.32,
        "y": 73.64
    }
]`
	path := filepath.Join(t.TempDir(), "mall_coordinates.json")
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0600))

	store, err := NewJSONStore(path, nil)
	require.NoError(t, err)

	shops, err := store.Shops().List(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "Shop_1_1", shops[0].Name)
	assert.Equal(t, 2, shops[1].Floor)
	assert.Equal(t, 22.32, shops[1].X)
}

func TestJSONStoreReplaceAllPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mall_coordinates.json")

	store, err := NewJSONStore(path, nil)
	require.NoError(t, err)

	require.NoError(t, store.Shops().ReplaceAll(context.Background(), sampleShops()))

	// A fresh store over the same file sees the replacement
	reloaded, err := NewJSONStore(path, nil)
	require.NoError(t, err)

	shops, err := reloaded.Shops().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleShops(), shops)
}

func TestJSONStoreGetByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mall_coordinates.json")

	store, err := NewJSONStore(path, sampleShops())
	require.NoError(t, err)

	shop, err := store.Shops().GetByName(context.Background(), "Shop_1_2")
	require.NoError(t, err)
	assert.Equal(t, 40.0, shop.X)

	_, err = store.Shops().GetByName(context.Background(), "Shop_9_9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONStoreSettingsInMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mall_coordinates.json")

	store, err := NewJSONStore(path, nil)
	require.NoError(t, err)
	ctx := context.Background()

	settings, err := store.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	settings.FloorPenalty = 10
	require.NoError(t, store.Settings().Update(ctx, settings))

	got, err := store.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.FloorPenalty)
}

func TestJSONStoreHealthCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mall_coordinates.json")

	store, err := NewJSONStore(path, nil)
	require.NoError(t, err)

	assert.NoError(t, store.HealthCheck(context.Background()))

	require.NoError(t, os.Remove(path))
	assert.Error(t, store.HealthCheck(context.Background()))
}
