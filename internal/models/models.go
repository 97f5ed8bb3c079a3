package models

// Shop represents a single shop inside the mall
type Shop struct {
	Name  string  `json:"name"`
	Floor int     `json:"floor"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Settings holds the tunables for mall generation and tour planning
type Settings struct {
	FloorPenalty  float64 `json:"floor_penalty"`
	MaxPasses     int     `json:"max_passes"`
	NumFloors     int     `json:"num_floors"`
	ShopsPerFloor int     `json:"shops_per_floor"`
	Seed          int64   `json:"seed"`
}

// DefaultSettings returns the reference configuration: a 3-floor mall with
// 5 shops per floor, floor penalty 50 and up to 20 refinement passes.
func DefaultSettings() *Settings {
	return &Settings{
		FloorPenalty:  50.0,
		MaxPasses:     20,
		NumFloors:     3,
		ShopsPerFloor: 5,
		Seed:          42,
	}
}

// TourStop represents a single stop in a computed walking tour
type TourStop struct {
	Order          int     `json:"order"`
	ShopIndex      int     `json:"shop_index"`
	Shop           *Shop   `json:"shop"`
	CostFromPrev   float64 `json:"cost_from_prev"`
	CumulativeCost float64 `json:"cumulative_cost"`
}

// TourSummary contains aggregate stats for a tour calculation
type TourSummary struct {
	TotalShops   int     `json:"total_shops"`
	TotalCost    float64 `json:"total_cost"`
	FloorChanges int     `json:"floor_changes"`
	FloorPenalty float64 `json:"floor_penalty"`
	Passes       int     `json:"passes"`
}

// TourResult contains the full result of a tour calculation.
// Order is always a permutation of the shop indices. The tour is an open
// path; it does not return to the starting shop.
type TourResult struct {
	Order   []int       `json:"order"`
	Stops   []TourStop  `json:"stops"`
	Summary TourSummary `json:"summary"`
}
