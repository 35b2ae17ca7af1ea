package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movableClock struct {
	today time.Time
}

func (c *movableClock) Today() time.Time {
	return c.today
}

func TestMatchService_BestMatchAndPrice(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	farmer, err := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	require.NoError(t, err)
	buyer, err := env.directory.RegisterBuyer("FreshMart", "555-0199", "Mumbai")
	require.NoError(t, err)

	_, _, err = env.harvests.AddHarvest(farmer.ID, "wheat", 300, daysFrom(testToday, 20))
	require.NoError(t, err)
	urgent, _, err := env.harvests.AddHarvest(farmer.ID, "wheat", 100, daysFrom(testToday, 3))
	require.NoError(t, err)

	demand, err := env.demands.AddDemand(buyer.ID, "wheat", 50)
	require.NoError(t, err)

	result, err := env.matcher.MatchDemand(demand.ID)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, demand.ID, result.DemandID)
	assert.Equal(t, urgent.ID, result.HarvestID)
	assert.Equal(t, farmer.ID, result.FarmerID)
	assert.Equal(t, 90, result.UrgencyScore)
	assert.Equal(t, 100.0, result.AvailableQuantity)
	assert.Equal(t, 3, result.DaysRemaining)
	assert.Equal(t, 21.6, result.SuggestedPricePerUnit)
}

func TestMatchService_StandardPrice(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	farmer, _ := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	buyer, _ := env.directory.RegisterBuyer("FreshMart", "555-0199", "Mumbai")

	_, _, err := env.harvests.AddHarvest(farmer.ID, "rice", 80, daysFrom(testToday, 15))
	require.NoError(t, err)
	demand, err := env.demands.AddDemand(buyer.ID, "rice", 80)
	require.NoError(t, err)

	result, err := env.matcher.MatchDemand(demand.ID)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 70, result.UrgencyScore)
	assert.Equal(t, 15, result.DaysRemaining)
	assert.Equal(t, 14.0, result.SuggestedPricePerUnit)
}

func TestMatchService_NeverReturnsIneligibleHarvest(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	farmer, _ := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	buyer, _ := env.directory.RegisterBuyer("FreshMart", "555-0199", "Mumbai")

	_, _, err := env.harvests.AddHarvest(farmer.ID, "Wheat", 500, daysFrom(testToday, 1))
	require.NoError(t, err)
	_, _, err = env.harvests.AddHarvest(farmer.ID, "wheat", 49, daysFrom(testToday, 1))
	require.NoError(t, err)
	eligible, _, err := env.harvests.AddHarvest(farmer.ID, "wheat", 60, daysFrom(testToday, 30))
	require.NoError(t, err)

	demand, err := env.demands.AddDemand(buyer.ID, "wheat", 50)
	require.NoError(t, err)

	result, err := env.matcher.MatchDemand(demand.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, eligible.ID, result.HarvestID)
	assert.GreaterOrEqual(t, result.AvailableQuantity, 50.0)
}

func TestMatchService_TieBreakLowestID(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	farmer, _ := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	buyer, _ := env.directory.RegisterBuyer("FreshMart", "555-0199", "Mumbai")

	first, _, err := env.harvests.AddHarvest(farmer.ID, "onion", 100, daysFrom(testToday, 7))
	require.NoError(t, err)
	_, _, err = env.harvests.AddHarvest(farmer.ID, "onion", 100, daysFrom(testToday, 9))
	require.NoError(t, err)

	demand, err := env.demands.AddDemand(buyer.ID, "onion", 10)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		result, err := env.matcher.MatchDemand(demand.ID)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, first.ID, result.HarvestID)
	}
}

func TestMatchService_NoMatch(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	farmer, _ := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	buyer, _ := env.directory.RegisterBuyer("FreshMart", "555-0199", "Mumbai")

	_, _, err := env.harvests.AddHarvest(farmer.ID, "barley", 100, daysFrom(testToday, 2))
	require.NoError(t, err)

	demand, err := env.demands.AddDemand(buyer.ID, "wheat", 10)
	require.NoError(t, err)

	result, err := env.matcher.MatchDemand(demand.ID)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestMatchService_DemandNotFound(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	result, err := env.matcher.MatchDemand(12345)
	assert.ErrorIs(t, err, ErrDemandNotFound)
	assert.Nil(t, result)
}

func TestMatchService_ScoreKeptDaysRecomputed(t *testing.T) {
	clock := &movableClock{today: testToday}
	env := setupTestEnv(t, clock)

	farmer, _ := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	buyer, _ := env.directory.RegisterBuyer("FreshMart", "555-0199", "Mumbai")

	harvest, days, err := env.harvests.AddHarvest(farmer.ID, "maize", 100, daysFrom(testToday, 15))
	require.NoError(t, err)
	assert.Equal(t, 15, days)
	assert.Equal(t, 70, harvest.HarvestScore)

	demand, err := env.demands.AddDemand(buyer.ID, "maize", 100)
	require.NoError(t, err)

	clock.today = daysFrom(testToday, 12)

	result, err := env.matcher.MatchDemand(demand.ID)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 70, result.UrgencyScore)
	assert.Equal(t, 3, result.DaysRemaining)
	assert.Equal(t, 16.8, result.SuggestedPricePerUnit)
}

func TestMatchService_DoesNotReserveInventory(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	farmer, _ := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	buyer, _ := env.directory.RegisterBuyer("FreshMart", "555-0199", "Mumbai")

	harvest, _, err := env.harvests.AddHarvest(farmer.ID, "wheat", 100, daysFrom(testToday, 4))
	require.NoError(t, err)

	d1, _ := env.demands.AddDemand(buyer.ID, "wheat", 80)
	d2, _ := env.demands.AddDemand(buyer.ID, "wheat", 80)

	r1, err := env.matcher.MatchDemand(d1.ID)
	require.NoError(t, err)
	r2, err := env.matcher.MatchDemand(d2.ID)
	require.NoError(t, err)

	assert.Equal(t, harvest.ID, r1.HarvestID)
	assert.Equal(t, harvest.ID, r2.HarvestID)

	stored, err := env.harvests.GetHarvest(harvest.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.Quantity)
}
