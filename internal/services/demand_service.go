package services

import (
	"strings"

	"github.com/agrisync/agrisync/internal/models"
	"github.com/agrisync/agrisync/internal/repository"
)

type DemandService struct {
	demandRepo *repository.DemandRepository
	buyerRepo  *repository.BuyerRepository
}

func NewDemandService(demandRepo *repository.DemandRepository, buyerRepo *repository.BuyerRepository) *DemandService {
	return &DemandService{
		demandRepo: demandRepo,
		buyerRepo:  buyerRepo,
	}
}

func (s *DemandService) AddDemand(buyerID uint, cropName string, quantityRequired float64) (*models.Demand, error) {
	if strings.TrimSpace(cropName) == "" {
		return nil, ErrInvalidCrop
	}
	if quantityRequired <= 0 {
		return nil, ErrInvalidQuantity
	}

	buyer, err := s.buyerRepo.FindByID(buyerID)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, ErrBuyerNotFound
	}

	demand := &models.Demand{
		BuyerID:          buyerID,
		CropName:         cropName,
		QuantityRequired: quantityRequired,
	}

	if err := s.demandRepo.Create(demand); err != nil {
		return nil, err
	}

	return demand, nil
}

func (s *DemandService) GetDemand(id uint) (*models.Demand, error) {
	demand, err := s.demandRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if demand == nil {
		return nil, ErrDemandNotFound
	}
	return demand, nil
}

func (s *DemandService) ListDemands() ([]models.Demand, error) {
	return s.demandRepo.FindAll()
}
