package mall

import (
	"fmt"
	"log"
	"math/rand"

	"mall-tour-planner/internal/models"
)

// Generate synthesizes a mall: floors 1..numFloors, each holding
// shopsPerFloor shops named Shop_<floor>_<id> at uniform random coordinates
// in [0, 100). The generator owns its own rand source, so the same seed
// always produces the same mall regardless of process-wide random state.
func Generate(numFloors, shopsPerFloor int, seed int64) []models.Shop {
	rng := rand.New(rand.NewSource(seed))

	shops := make([]models.Shop, 0, numFloors*shopsPerFloor)
	for floor := 1; floor <= numFloors; floor++ {
		for id := 1; id <= shopsPerFloor; id++ {
			shops = append(shops, models.Shop{
				Name:  fmt.Sprintf("Shop_%d_%d", floor, id),
				Floor: floor,
				X:     rng.Float64() * 100,
				Y:     rng.Float64() * 100,
			})
		}
	}

	log.Printf("[MALL] Generated mall: floors=%d shops_per_floor=%d seed=%d total=%d",
		numFloors, shopsPerFloor, seed, len(shops))
	return shops
}

// GenerateFromSettings generates a mall from the persisted settings
func GenerateFromSettings(s *models.Settings) []models.Shop {
	return Generate(s.NumFloors, s.ShopsPerFloor, s.Seed)
}
