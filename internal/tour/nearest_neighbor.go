package tour

import (
	"math"

	"mall-tour-planner/internal/models"
)

// NearestNeighbor builds an initial visiting order with the greedy
// nearest-neighbor heuristic. Construction starts at the shop with the
// smallest (floor, x, y) tuple, so the result is fully determined by the
// input data. Cost ties between candidates go to the lowest shop index.
func NearestNeighbor(shops []models.Shop, floorPenalty float64) []int {
	n := len(shops)
	if n == 0 {
		return []int{}
	}

	start := 0
	for i := 1; i < n; i++ {
		if lessByPosition(shops[i], shops[start]) {
			start = i
		}
	}

	order := make([]int, 0, n)
	order = append(order, start)
	visited := make([]bool, n)
	visited[start] = true

	current := start
	for len(order) < n {
		next := -1
		best := math.Inf(1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if c := StepCost(shops[current], shops[j], floorPenalty); c < best {
				best = c
				next = j
			}
		}
		visited[next] = true
		order = append(order, next)
		current = next
	}

	return order
}

// lessByPosition orders shops by (floor, x, y)
func lessByPosition(a, b models.Shop) bool {
	if a.Floor != b.Floor {
		return a.Floor < b.Floor
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
