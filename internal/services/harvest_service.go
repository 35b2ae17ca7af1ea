package services

import (
	"strings"
	"time"

	"github.com/agrisync/agrisync/internal/models"
	"github.com/agrisync/agrisync/internal/pricing"
	"github.com/agrisync/agrisync/internal/repository"
)

type HarvestService struct {
	harvestRepo *repository.HarvestRepository
	farmerRepo  *repository.FarmerRepository
	clock       Clock
}

func NewHarvestService(
	harvestRepo *repository.HarvestRepository,
	farmerRepo *repository.FarmerRepository,
	clock Clock,
) *HarvestService {
	return &HarvestService{
		harvestRepo: harvestRepo,
		farmerRepo:  farmerRepo,
		clock:       clock,
	}
}

// AddHarvest records a listing for an existing farmer. The urgency score is
// derived from the days remaining as of today and stored with the listing;
// it is never recomputed. Past dates are accepted.
func (s *HarvestService) AddHarvest(farmerID uint, cropName string, quantity float64, expectedDate time.Time) (*models.Harvest, int, error) {
	if strings.TrimSpace(cropName) == "" {
		return nil, 0, ErrInvalidCrop
	}
	if quantity <= 0 {
		return nil, 0, ErrInvalidQuantity
	}

	farmer, err := s.farmerRepo.FindByID(farmerID)
	if err != nil {
		return nil, 0, err
	}
	if farmer == nil {
		return nil, 0, ErrFarmerNotFound
	}

	daysRemaining := pricing.DaysRemaining(s.clock.Today(), expectedDate)

	harvest := &models.Harvest{
		FarmerID:            farmerID,
		CropName:            cropName,
		Quantity:            quantity,
		ExpectedHarvestDate: expectedDate,
		HarvestScore:        pricing.UrgencyScore(daysRemaining),
	}

	if err := s.harvestRepo.Create(harvest); err != nil {
		return nil, 0, err
	}

	return harvest, daysRemaining, nil
}

func (s *HarvestService) GetHarvest(id uint) (*models.Harvest, error) {
	harvest, err := s.harvestRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if harvest == nil {
		return nil, ErrHarvestNotFound
	}
	return harvest, nil
}

func (s *HarvestService) ListHarvests(filter repository.HarvestFilter) ([]models.Harvest, error) {
	if filter == (repository.HarvestFilter{}) {
		return s.harvestRepo.FindAll()
	}
	return s.harvestRepo.List(filter)
}
