package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-tour-planner/internal/mall"
	"mall-tour-planner/internal/models"
	"mall-tour-planner/internal/testutil"
)

func TestComputeEfficientPathRejectsNegativePenalty(t *testing.T) {
	planner := NewPlanner()

	_, err := planner.ComputeEfficientPath(testutil.SquareMall(), Config{FloorPenalty: -1, MaxPasses: 20})

	require.Error(t, err)
	var cfgErr *ErrInvalidConfig
	assert.ErrorAs(t, err, &cfgErr)
}

func TestComputeEfficientPathRejectsZeroPasses(t *testing.T) {
	planner := NewPlanner()

	_, err := planner.ComputeEfficientPath(testutil.SquareMall(), Config{FloorPenalty: 50, MaxPasses: 0})

	require.Error(t, err)
	var cfgErr *ErrInvalidConfig
	assert.ErrorAs(t, err, &cfgErr)
}

func TestComputeEfficientPathEmptyMall(t *testing.T) {
	planner := NewPlanner()

	result, err := planner.ComputeEfficientPath([]models.Shop{}, DefaultConfig())

	require.NoError(t, err)
	assert.Empty(t, result.Order)
	assert.Empty(t, result.Stops)
	assert.Equal(t, 0.0, result.Summary.TotalCost)
}

func TestComputeEfficientPathSingleShop(t *testing.T) {
	planner := NewPlanner()

	result, err := planner.ComputeEfficientPath([]models.Shop{{Name: "Only", Floor: 1, X: 1, Y: 2}}, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, []int{0}, result.Order)
	assert.Equal(t, 0.0, result.Summary.TotalCost)
}

func TestComputeEfficientPathSquare(t *testing.T) {
	planner := NewPlanner()

	result, err := planner.ComputeEfficientPath(testutil.SquareMall(), DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, result.Order)
	assert.InDelta(t, 30.0, result.Summary.TotalCost, 1e-9)
	assert.Equal(t, 0, result.Summary.FloorChanges)
}

func TestComputeEfficientPathStacksFloorPenalty(t *testing.T) {
	planner := NewPlanner()

	result, err := planner.ComputeEfficientPath(testutil.StackedPair(), DefaultConfig())

	require.NoError(t, err)
	assert.InDelta(t, 50.0, result.Summary.TotalCost, 1e-9)
	assert.Equal(t, 1, result.Summary.FloorChanges)
}

func TestComputeEfficientPathGeneratedMall(t *testing.T) {
	planner := NewPlanner()
	shops := mall.Generate(3, 5, 42)

	result, err := planner.ComputeEfficientPath(shops, DefaultConfig())

	require.NoError(t, err)
	assertPermutation(t, result.Order, len(shops))

	// Refinement must not make the greedy construction worse
	initialCost := PathLength(NearestNeighbor(shops, 50), shops, 50)
	assert.LessOrEqual(t, result.Summary.TotalCost, initialCost)
}

func TestComputeEfficientPathStopAccounting(t *testing.T) {
	planner := NewPlanner()
	shops := mall.Generate(2, 4, 7)

	result, err := planner.ComputeEfficientPath(shops, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, result.Stops, len(shops))

	assert.Equal(t, 0.0, result.Stops[0].CostFromPrev)
	cumulative := 0.0
	for k, stop := range result.Stops {
		assert.Equal(t, k, stop.Order)
		assert.Equal(t, result.Order[k], stop.ShopIndex)
		assert.Equal(t, shops[result.Order[k]].Name, stop.Shop.Name)
		cumulative += stop.CostFromPrev
		assert.InDelta(t, cumulative, stop.CumulativeCost, 1e-9)
	}
	assert.InDelta(t, result.Summary.TotalCost, result.Stops[len(result.Stops)-1].CumulativeCost, 1e-9)
}
