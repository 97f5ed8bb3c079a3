package tour

import "mall-tour-planner/internal/models"

// improvementEpsilon filters out reversals whose gain is only floating-point
// noise, which would otherwise oscillate forever.
const improvementEpsilon = 1e-9

// TwoOpt refines a visiting order with classic 2-opt local search: for each
// edge pair ((i,i+1), (j,j+1)) it reverses order[i+1..j] in place whenever the
// reconnected edges are strictly cheaper. Improvements apply immediately, so
// later comparisons in the same pass see the updated order. Passes repeat
// until one makes no improvement or maxPasses is reached; running out of
// passes is a silent approximation, not an error.
//
// Returns the refined order and the number of passes run. Orders shorter than
// four stops have no interior segment to reverse and come back unchanged.
// The refined order never costs more than the input order.
func TwoOpt(order []int, shops []models.Shop, floorPenalty float64, maxPasses int) ([]int, int) {
	n := len(order)
	if n < 4 {
		return order, 0
	}

	passes := 0
	improved := true
	for improved && passes < maxPasses {
		improved = false
		passes++
		for i := 0; i <= n-4; i++ {
			for j := i + 2; j <= n-2; j++ {
				before := StepCost(shops[order[i]], shops[order[i+1]], floorPenalty) +
					StepCost(shops[order[j]], shops[order[j+1]], floorPenalty)
				after := StepCost(shops[order[i]], shops[order[j]], floorPenalty) +
					StepCost(shops[order[i+1]], shops[order[j+1]], floorPenalty)
				if after+improvementEpsilon < before {
					reverse(order, i+1, j)
					improved = true
				}
			}
		}
	}

	return order, passes
}

// reverse flips order[i..j] in place
func reverse(order []int, i, j int) {
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}
