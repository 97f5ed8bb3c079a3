package mall

import (
	"errors"
	"fmt"
	"math"

	"mall-tour-planner/internal/models"
)

// ErrShopNotFound is returned when a shop lookup by name finds no match
var ErrShopNotFound = errors.New("shop not found")

// elevatorSeconds is the flat charge for any floor change in the legacy
// walking-time model, regardless of how many floors are crossed.
const elevatorSeconds = 30.0

// FindShop returns the first shop with the given name. Shop names are
// expected to be unique; if duplicates exist the first match wins.
func FindShop(shops []models.Shop, name string) (*models.Shop, error) {
	for i := range shops {
		if shops[i].Name == name {
			return &shops[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrShopNotFound, name)
}

// WalkingTime estimates the seconds to walk between two named shops using
// the legacy pair model: Manhattan distance on (x, y) plus a flat 30s
// elevator charge when the shops are on different floors. This deliberately
// differs from the tour planner's cost model (Euclidean plus a per-floor
// penalty); both are kept because they answer different questions.
func WalkingTime(shops []models.Shop, name1, name2 string) (float64, error) {
	a, err := FindShop(shops, name1)
	if err != nil {
		return 0, err
	}
	b, err := FindShop(shops, name2)
	if err != nil {
		return 0, err
	}

	seconds := math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
	if a.Floor != b.Floor {
		seconds += elevatorSeconds
	}
	return seconds, nil
}
