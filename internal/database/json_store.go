package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"mall-tour-planner/internal/models"
)

// JSONStore is a flat-file data store holding the mall as a bare JSON array
// of {name, floor, x, y} objects — the same mall_coordinates.json format the
// original generator wrote, so files can move between the two freely.
// Settings live in memory with defaults; only the shop list survives
// restarts.
type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	shops    []models.Shop
	settings models.Settings

	shopRepository     ShopRepository
	settingsRepository SettingsRepository
}

func (s *JSONStore) Shops() ShopRepository        { return s.shopRepository }
func (s *JSONStore) Settings() SettingsRepository { return s.settingsRepository }

// NewJSONStore creates a JSON-file data store. When the file does not exist
// it is seeded with defaultShops and written out immediately.
func NewJSONStore(filePath string, defaultShops []models.Shop) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		settings: *models.DefaultSettings(),
	}

	if err := store.load(defaultShops); err != nil {
		return nil, err
	}

	store.shopRepository = &jsonShopRepository{store: store}
	store.settingsRepository = &jsonSettingsRepository{store: store}

	return store, nil
}

func (s *JSONStore) load(defaultShops []models.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		log.Printf("[DB] No mall file at %s, seeding %d shops", s.filePath, len(defaultShops))
		s.shops = append([]models.Shop{}, defaultShops...)
		return s.saveUnlocked()
	}
	if err != nil {
		return fmt.Errorf("failed to read mall file: %w", err)
	}

	if err := json.Unmarshal(data, &s.shops); err != nil {
		return fmt.Errorf("failed to parse mall file: %w", err)
	}
	if s.shops == nil {
		s.shops = []models.Shop{}
	}

	log.Printf("[DB] Loaded mall file %s: %d shops", s.filePath, len(s.shops))
	return nil
}

func (s *JSONStore) saveUnlocked() error {
	data, err := json.MarshalIndent(s.shops, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal mall: %w", err)
	}

	// Atomic write
	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write mall file: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename mall file: %w", err)
	}

	return nil
}

// Close is a no-op for the JSON store
func (s *JSONStore) Close() error {
	return nil
}

// HealthCheck verifies the backing file is still readable
func (s *JSONStore) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, err := os.Stat(s.filePath); err != nil {
		return fmt.Errorf("mall file unavailable: %w", err)
	}
	return nil
}

type jsonShopRepository struct {
	store *JSONStore
}

func (r *jsonShopRepository) List(ctx context.Context) ([]models.Shop, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	shops := make([]models.Shop, len(r.store.shops))
	copy(shops, r.store.shops)
	return shops, nil
}

func (r *jsonShopRepository) GetByName(ctx context.Context, name string) (*models.Shop, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for i := range r.store.shops {
		if r.store.shops[i].Name == name {
			s := r.store.shops[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: shop %q", ErrNotFound, name)
}

func (r *jsonShopRepository) ReplaceAll(ctx context.Context, shops []models.Shop) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.shops = make([]models.Shop, len(shops))
	copy(r.store.shops, shops)
	return r.store.saveUnlocked()
}

func (r *jsonShopRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.shops), nil
}

type jsonSettingsRepository struct {
	store *JSONStore
}

func (r *jsonSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s := r.store.settings
	return &s, nil
}

func (r *jsonSettingsRepository) Update(ctx context.Context, s *models.Settings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.settings = *s
	return nil
}
