package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBest_HighestScoreWins(t *testing.T) {
	candidates := []Candidate{
		{ID: 1, CropName: "wheat", Quantity: 100, UrgencyScore: 70},
		{ID: 2, CropName: "wheat", Quantity: 100, UrgencyScore: 90},
		{ID: 3, CropName: "wheat", Quantity: 100, UrgencyScore: 80},
	}

	assert.Equal(t, 1, SelectBest(candidates, "wheat", 50))
}

func TestSelectBest_TieGoesToLowestID(t *testing.T) {
	candidates := []Candidate{
		{ID: 9, CropName: "rice", Quantity: 10, UrgencyScore: 80},
		{ID: 4, CropName: "rice", Quantity: 10, UrgencyScore: 80},
		{ID: 7, CropName: "rice", Quantity: 10, UrgencyScore: 80},
	}

	assert.Equal(t, 1, SelectBest(candidates, "rice", 10))

	reversed := []Candidate{candidates[2], candidates[1], candidates[0]}
	assert.Equal(t, uint(4), reversed[SelectBest(reversed, "rice", 10)].ID)
}

func TestSelectBest_FiltersCropAndQuantity(t *testing.T) {
	candidates := []Candidate{
		{ID: 1, CropName: "Wheat", Quantity: 500, UrgencyScore: 90},
		{ID: 2, CropName: "wheat", Quantity: 49.5, UrgencyScore: 90},
		{ID: 3, CropName: "corn", Quantity: 500, UrgencyScore: 90},
		{ID: 4, CropName: "wheat", Quantity: 50, UrgencyScore: 70},
	}

	idx := SelectBest(candidates, "wheat", 50)
	assert.Equal(t, 3, idx)
	assert.Equal(t, "wheat", candidates[idx].CropName)
	assert.GreaterOrEqual(t, candidates[idx].Quantity, 50.0)
}

func TestSelectBest_NoCandidates(t *testing.T) {
	assert.Equal(t, -1, SelectBest(nil, "wheat", 1))
	assert.Equal(t, -1, SelectBest([]Candidate{
		{ID: 1, CropName: "barley", Quantity: 100, UrgencyScore: 90},
	}, "wheat", 1))
}
