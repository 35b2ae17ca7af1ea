package services

import (
	"fmt"
	"log"

	"github.com/agrisync/agrisync/internal/pricing"
	"github.com/agrisync/agrisync/internal/repository"
)

// MatchResult describes the harvest selected for a demand and the price
// suggested for it. It is computed per request and never stored.
type MatchResult struct {
	DemandID              uint    `json:"demand_id"`
	HarvestID             uint    `json:"harvest_id"`
	FarmerID              uint    `json:"farmer_id"`
	UrgencyScore          int     `json:"harvest_score"`
	AvailableQuantity     float64 `json:"available_quantity"`
	SuggestedPricePerUnit float64 `json:"suggested_price_per_unit"`
	DaysRemaining         int     `json:"days_remaining"`
}

type MatchService struct {
	demandRepo  *repository.DemandRepository
	harvestRepo *repository.HarvestRepository
	rules       pricing.Rules
	clock       Clock
}

func NewMatchService(
	demandRepo *repository.DemandRepository,
	harvestRepo *repository.HarvestRepository,
	rules pricing.Rules,
	clock Clock,
) *MatchService {
	return &MatchService{
		demandRepo:  demandRepo,
		harvestRepo: harvestRepo,
		rules:       rules,
		clock:       clock,
	}
}

// MatchDemand picks the best harvest for a demand. A nil result with a nil
// error means no harvest qualifies. The selected harvest is not reserved.
func (s *MatchService) MatchDemand(demandID uint) (*MatchResult, error) {
	demand, err := s.demandRepo.FindByID(demandID)
	if err != nil {
		return nil, fmt.Errorf("failed to load demand: %w", err)
	}
	if demand == nil {
		return nil, ErrDemandNotFound
	}

	harvests, err := s.harvestRepo.List(repository.HarvestFilter{
		CropName:    demand.CropName,
		MinQuantity: demand.QuantityRequired,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list harvests: %w", err)
	}

	candidates := make([]pricing.Candidate, len(harvests))
	for i, h := range harvests {
		candidates[i] = pricing.Candidate{
			ID:           h.ID,
			CropName:     h.CropName,
			Quantity:     h.Quantity,
			UrgencyScore: h.HarvestScore,
		}
	}

	idx := pricing.SelectBest(candidates, demand.CropName, demand.QuantityRequired)
	if idx < 0 {
		log.Printf("[Match] demand %d: no harvest for %q >= %g", demand.ID, demand.CropName, demand.QuantityRequired)
		return nil, nil
	}

	best := harvests[idx]
	// days remaining as of today, not as of registration
	daysRemaining := pricing.DaysRemaining(s.clock.Today(), best.ExpectedHarvestDate)

	result := &MatchResult{
		DemandID:              demand.ID,
		HarvestID:             best.ID,
		FarmerID:              best.FarmerID,
		UrgencyScore:          best.HarvestScore,
		AvailableQuantity:     best.Quantity,
		SuggestedPricePerUnit: s.rules.SuggestedPrice(best.HarvestScore, daysRemaining),
		DaysRemaining:         daysRemaining,
	}

	log.Printf("[Match] demand %d -> harvest %d at %.2f", demand.ID, best.ID, result.SuggestedPricePerUnit)
	return result, nil
}
