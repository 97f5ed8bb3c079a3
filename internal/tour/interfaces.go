package tour

import (
	"fmt"

	"mall-tour-planner/internal/models"
)

// Config holds the tunables for a tour calculation
type Config struct {
	// FloorPenalty is the additive cost per floor crossed, relative to one
	// unit of horizontal walking distance. Large values make the planner
	// finish a floor before taking the elevator.
	FloorPenalty float64
	// MaxPasses bounds the number of 2-opt refinement passes.
	MaxPasses int
}

// DefaultConfig returns the reference configuration (penalty 50, 20 passes)
func DefaultConfig() Config {
	return Config{
		FloorPenalty: 50.0,
		MaxPasses:    20,
	}
}

// Validate checks the configuration before any computation starts
func (c Config) Validate() error {
	if c.FloorPenalty < 0 {
		return &ErrInvalidConfig{Reason: fmt.Sprintf("floor penalty must be non-negative, got %g", c.FloorPenalty)}
	}
	if c.MaxPasses <= 0 {
		return &ErrInvalidConfig{Reason: fmt.Sprintf("max passes must be positive, got %d", c.MaxPasses)}
	}
	return nil
}

// Planner computes an efficient walking tour over a fixed set of shops
type Planner interface {
	ComputeEfficientPath(shops []models.Shop, cfg Config) (*models.TourResult, error)
}

// ErrInvalidConfig is returned when a tour is requested with nonsensical
// configuration values
type ErrInvalidConfig struct {
	Reason string
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid tour configuration: %s", e.Reason)
}
