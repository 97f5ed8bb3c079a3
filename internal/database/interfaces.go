package database

import (
	"context"

	"mall-tour-planner/internal/models"
)

// DataStore is the interface for data persistence
type DataStore interface {
	Close() error
	HealthCheck(ctx context.Context) error
	Shops() ShopRepository
	Settings() SettingsRepository
}

// ShopRepository handles mall shop persistence. List returns shops in their
// stored order; the tour engine depends on indices into that slice staying
// stable for the duration of a calculation.
type ShopRepository interface {
	List(ctx context.Context) ([]models.Shop, error)
	GetByName(ctx context.Context, name string) (*models.Shop, error)
	ReplaceAll(ctx context.Context, shops []models.Shop) error
	Count(ctx context.Context) (int, error)
}

// SettingsRepository handles settings persistence
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, s *models.Settings) error
}
