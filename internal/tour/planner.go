package tour

import (
	"log"

	"mall-tour-planner/internal/models"
)

// planner is the two-phase heuristic planner: nearest-neighbor construction
// followed by 2-opt refinement
type planner struct{}

// NewPlanner creates the default tour planner
func NewPlanner() Planner {
	return planner{}
}

// ComputeEfficientPath computes a visiting order over all shops and its total
// cost. The order is always a permutation of the shop indices; an empty shop
// set yields an empty tour with zero cost.
func (planner) ComputeEfficientPath(shops []models.Shop, cfg Config) (*models.TourResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("[TOUR] Starting calculation: shops=%d floor_penalty=%.1f max_passes=%d",
		len(shops), cfg.FloorPenalty, cfg.MaxPasses)

	order := NearestNeighbor(shops, cfg.FloorPenalty)
	initial := PathLength(order, shops, cfg.FloorPenalty)

	order, passes := TwoOpt(order, shops, cfg.FloorPenalty, cfg.MaxPasses)

	result := buildResult(order, shops, cfg, passes)
	log.Printf("[TOUR] Complete: total_cost=%.1f initial_cost=%.1f passes=%d",
		result.Summary.TotalCost, initial, passes)

	return result, nil
}

// buildResult assembles per-stop step costs and the aggregate summary
func buildResult(order []int, shops []models.Shop, cfg Config, passes int) *models.TourResult {
	stops := make([]models.TourStop, len(order))
	cumulative := 0.0
	floorChanges := 0

	for k, idx := range order {
		stepCost := 0.0
		if k > 0 {
			prev := shops[order[k-1]]
			stepCost = StepCost(prev, shops[idx], cfg.FloorPenalty)
			if prev.Floor != shops[idx].Floor {
				floorChanges++
			}
		}
		cumulative += stepCost

		stops[k] = models.TourStop{
			Order:          k,
			ShopIndex:      idx,
			Shop:           &shops[idx],
			CostFromPrev:   stepCost,
			CumulativeCost: cumulative,
		}
	}

	return &models.TourResult{
		Order: order,
		Stops: stops,
		Summary: models.TourSummary{
			TotalShops:   len(order),
			TotalCost:    cumulative,
			FloorChanges: floorChanges,
			FloorPenalty: cfg.FloorPenalty,
			Passes:       passes,
		},
	}
}
