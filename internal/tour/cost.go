package tour

import (
	"math"

	"mall-tour-planner/internal/models"
)

// StepCost returns the walking cost between two shops: Euclidean distance on
// (x, y) plus floorPenalty for every floor crossed. Symmetric, and zero only
// when both shops share the same point on the same floor.
func StepCost(a, b models.Shop, floorPenalty float64) float64 {
	horizontal := math.Hypot(a.X-b.X, a.Y-b.Y)
	vertical := floorPenalty * math.Abs(float64(a.Floor-b.Floor))
	return horizontal + vertical
}

// PathLength returns the total cost of visiting shops in the given order.
// The path is open: no return leg to the start. Orders with fewer than two
// stops cost nothing.
func PathLength(order []int, shops []models.Shop, floorPenalty float64) float64 {
	total := 0.0
	for k := 0; k+1 < len(order); k++ {
		total += StepCost(shops[order[k]], shops[order[k+1]], floorPenalty)
	}
	return total
}
