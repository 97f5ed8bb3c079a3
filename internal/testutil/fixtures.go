package testutil

import "mall-tour-planner/internal/models"

// SquareMall returns four shops on one floor at the corners of a 10x10
// square, in store order A, B, C, D. The optimal open tour visits them
// around the perimeter for a total cost of 30.
func SquareMall() []models.Shop {
	return []models.Shop{
		{Name: "A", Floor: 1, X: 0, Y: 0},
		{Name: "B", Floor: 1, X: 10, Y: 0},
		{Name: "C", Floor: 1, X: 10, Y: 10},
		{Name: "D", Floor: 1, X: 0, Y: 10},
	}
}

// StackedPair returns two shops at the same (x, y) on different floors
func StackedPair() []models.Shop {
	return []models.Shop{
		{Name: "Lower", Floor: 1, X: 25, Y: 25},
		{Name: "Upper", Floor: 2, X: 25, Y: 25},
	}
}

// TwoFloorMall returns a small mall spread over two floors with shops
// interleaved in store order, so floor-aware ordering is observable.
func TwoFloorMall() []models.Shop {
	return []models.Shop{
		{Name: "Shop_2_1", Floor: 2, X: 10, Y: 10},
		{Name: "Shop_1_1", Floor: 1, X: 5, Y: 5},
		{Name: "Shop_2_2", Floor: 2, X: 90, Y: 20},
		{Name: "Shop_1_2", Floor: 1, X: 60, Y: 40},
		{Name: "Shop_1_3", Floor: 1, X: 30, Y: 80},
	}
}
