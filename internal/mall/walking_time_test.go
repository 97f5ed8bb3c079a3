package mall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-tour-planner/internal/models"
)

func testShops() []models.Shop {
	return []models.Shop{
		{Name: "Shop_1_1", Floor: 1, X: 10, Y: 20},
		{Name: "Shop_1_2", Floor: 1, X: 40, Y: 60},
		{Name: "Shop_2_1", Floor: 2, X: 10, Y: 20},
	}
}

func TestFindShop(t *testing.T) {
	shops := testShops()

	shop, err := FindShop(shops, "Shop_1_2")
	require.NoError(t, err)
	assert.Equal(t, 40.0, shop.X)
}

func TestFindShopNotFound(t *testing.T) {
	_, err := FindShop(testShops(), "Shop_9_9")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestFindShopDuplicateNamesFirstWins(t *testing.T) {
	shops := []models.Shop{
		{Name: "Twin", Floor: 1, X: 1, Y: 1},
		{Name: "Twin", Floor: 2, X: 99, Y: 99},
	}

	shop, err := FindShop(shops, "Twin")
	require.NoError(t, err)
	assert.Equal(t, 1, shop.Floor)
}

func TestWalkingTimeSameFloor(t *testing.T) {
	seconds, err := WalkingTime(testShops(), "Shop_1_1", "Shop_1_2")

	require.NoError(t, err)
	assert.Equal(t, 70.0, seconds) // |10-40| + |20-60|
}

func TestWalkingTimeAcrossFloors(t *testing.T) {
	seconds, err := WalkingTime(testShops(), "Shop_1_1", "Shop_2_1")

	require.NoError(t, err)
	assert.Equal(t, 30.0, seconds) // same spot, one elevator ride
}

func TestWalkingTimeUnknownShop(t *testing.T) {
	_, err := WalkingTime(testShops(), "Shop_1_1", "Nope")
	assert.ErrorIs(t, err, ErrShopNotFound)

	_, err = WalkingTime(testShops(), "Nope", "Shop_1_1")
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestWalkingTimeSymmetric(t *testing.T) {
	forward, err := WalkingTime(testShops(), "Shop_1_2", "Shop_2_1")
	require.NoError(t, err)
	backward, err := WalkingTime(testShops(), "Shop_2_1", "Shop_1_2")
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
}
