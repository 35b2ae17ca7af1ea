package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemandService_AddDemand(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	buyer, err := env.directory.RegisterBuyer("FreshMart", "555-0199", "Mumbai")
	require.NoError(t, err)

	demand, err := env.demands.AddDemand(buyer.ID, "wheat", 50)
	require.NoError(t, err)
	assert.NotZero(t, demand.ID)

	found, err := env.demands.GetDemand(demand.ID)
	require.NoError(t, err)
	assert.Equal(t, "wheat", found.CropName)
	assert.Equal(t, 50.0, found.QuantityRequired)

	demands, err := env.demands.ListDemands()
	require.NoError(t, err)
	assert.Len(t, demands, 1)
}

func TestDemandService_AddDemand_UnknownBuyer(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	_, err := env.demands.AddDemand(3, "wheat", 50)
	assert.ErrorIs(t, err, ErrBuyerNotFound)
}

func TestDemandService_AddDemand_Validation(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	buyer, err := env.directory.RegisterBuyer("FreshMart", "555-0199", "Mumbai")
	require.NoError(t, err)

	_, err = env.demands.AddDemand(buyer.ID, "wheat", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = env.demands.AddDemand(buyer.ID, "", 5)
	assert.ErrorIs(t, err, ErrInvalidCrop)
}

func TestDemandService_GetDemand_NotFound(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	_, err := env.demands.GetDemand(99)
	assert.ErrorIs(t, err, ErrDemandNotFound)
}
