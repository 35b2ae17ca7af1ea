package services

import (
	"testing"

	"github.com/agrisync/agrisync/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvestService_AddHarvest_Scores(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	farmer, err := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	require.NoError(t, err)

	tests := []struct {
		days      int
		wantScore int
	}{
		{-2, 90},
		{5, 90},
		{10, 80},
		{11, 70},
	}

	for _, tt := range tests {
		harvest, days, err := env.harvests.AddHarvest(farmer.ID, "wheat", 100, daysFrom(testToday, tt.days))
		require.NoError(t, err)
		assert.Equal(t, tt.days, days)
		assert.Equal(t, tt.wantScore, harvest.HarvestScore, "days=%d", tt.days)

		stored, err := env.harvests.GetHarvest(harvest.ID)
		require.NoError(t, err)
		assert.Equal(t, tt.wantScore, stored.HarvestScore)
	}
}

func TestHarvestService_AddHarvest_UnknownFarmer(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	_, _, err := env.harvests.AddHarvest(7, "wheat", 100, testToday)
	assert.ErrorIs(t, err, ErrFarmerNotFound)

	count, err := env.harvestRepo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHarvestService_AddHarvest_Validation(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	farmer, err := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	require.NoError(t, err)

	_, _, err = env.harvests.AddHarvest(farmer.ID, "wheat", 0, testToday)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, _, err = env.harvests.AddHarvest(farmer.ID, "  ", 10, testToday)
	assert.ErrorIs(t, err, ErrInvalidCrop)
}

func TestHarvestService_GetHarvest_NotFound(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	_, err := env.harvests.GetHarvest(1)
	assert.ErrorIs(t, err, ErrHarvestNotFound)
}

func TestHarvestService_ListHarvests(t *testing.T) {
	env := setupTestEnv(t, FixedClock(testToday))

	farmer, err := env.directory.RegisterFarmer("Asha", "555-0101", "Nashik")
	require.NoError(t, err)

	_, _, err = env.harvests.AddHarvest(farmer.ID, "wheat", 100, daysFrom(testToday, 3))
	require.NoError(t, err)
	_, _, err = env.harvests.AddHarvest(farmer.ID, "wheat", 10, daysFrom(testToday, 3))
	require.NoError(t, err)
	_, _, err = env.harvests.AddHarvest(farmer.ID, "onion", 100, daysFrom(testToday, 3))
	require.NoError(t, err)

	all, err := env.harvests.ListHarvests(repository.HarvestFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	wheat, err := env.harvests.ListHarvests(repository.HarvestFilter{CropName: "wheat", MinQuantity: 50})
	require.NoError(t, err)
	assert.Len(t, wheat, 1)
}
