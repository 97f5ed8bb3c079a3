package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mall-tour-planner/internal/mall"
	"mall-tour-planner/internal/testutil"
)

func TestTwoOptShortOrdersUnchanged(t *testing.T) {
	shops := testutil.SquareMall()

	for _, order := range [][]int{{}, {0}, {1, 0}, {2, 0, 1}} {
		input := append([]int{}, order...)
		refined, passes := TwoOpt(input, shops, 50, 20)
		assert.Equal(t, order, refined)
		assert.Equal(t, 0, passes)
	}
}

func TestTwoOptUncrossesSquare(t *testing.T) {
	shops := testutil.SquareMall()

	// A→C and B→D cross; reversing the middle segment uncrosses them
	refined, _ := TwoOpt([]int{0, 2, 1, 3}, shops, 50, 20)

	assert.Equal(t, []int{0, 1, 2, 3}, refined)
	assert.InDelta(t, 30.0, PathLength(refined, shops, 50), 1e-9)
}

func TestTwoOptLeavesOptimalSquareAlone(t *testing.T) {
	shops := testutil.SquareMall()

	refined, passes := TwoOpt([]int{0, 1, 2, 3}, shops, 50, 20)

	assert.Equal(t, []int{0, 1, 2, 3}, refined)
	assert.Equal(t, 1, passes, "one scan, no improvement, done")
}

func TestTwoOptNeverIncreasesCost(t *testing.T) {
	for _, seed := range []int64{7, 42, 99, 2024} {
		shops := mall.Generate(3, 5, seed)

		initial := NearestNeighbor(shops, 50)
		initialCost := PathLength(initial, shops, 50)

		refined, _ := TwoOpt(initial, shops, 50, 20)
		refinedCost := PathLength(refined, shops, 50)

		assert.LessOrEqual(t, refinedCost, initialCost, "seed %d", seed)
		assertPermutation(t, refined, len(shops))
	}
}

func TestTwoOptIdempotentCost(t *testing.T) {
	shops := mall.Generate(4, 6, 42)

	first, _ := TwoOpt(NearestNeighbor(shops, 50), shops, 50, 20)
	firstCost := PathLength(first, shops, 50)

	second, _ := TwoOpt(append([]int{}, first...), shops, 50, 20)
	secondCost := PathLength(second, shops, 50)

	assert.InDelta(t, firstCost, secondCost, 1e-9)
}

func TestTwoOptRespectsPassBudget(t *testing.T) {
	shops := mall.Generate(3, 10, 5)

	initial := NearestNeighbor(shops, 50)
	refined, passes := TwoOpt(append([]int{}, initial...), shops, 50, 1)

	assert.Equal(t, 1, passes)
	assert.LessOrEqual(t, PathLength(refined, shops, 50), PathLength(initial, shops, 50))
}

func TestTwoOptZeroPenalty(t *testing.T) {
	shops := testutil.TwoFloorMall()

	initial := NearestNeighbor(shops, 0)
	refined, _ := TwoOpt(append([]int{}, initial...), shops, 0, 20)

	assert.LessOrEqual(t, PathLength(refined, shops, 0), PathLength(initial, shops, 0))
	assertPermutation(t, refined, len(shops))
}
