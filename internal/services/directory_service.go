package services

import (
	"github.com/agrisync/agrisync/internal/models"
	"github.com/agrisync/agrisync/internal/repository"
)

// DirectoryService registers and looks up the parties of the marketplace.
type DirectoryService struct {
	farmerRepo *repository.FarmerRepository
	buyerRepo  *repository.BuyerRepository
}

func NewDirectoryService(farmerRepo *repository.FarmerRepository, buyerRepo *repository.BuyerRepository) *DirectoryService {
	return &DirectoryService{
		farmerRepo: farmerRepo,
		buyerRepo:  buyerRepo,
	}
}

func (s *DirectoryService) RegisterFarmer(name, phone, location string) (*models.Farmer, error) {
	farmer := &models.Farmer{
		Name:     name,
		Phone:    phone,
		Location: location,
	}

	if err := s.farmerRepo.Create(farmer); err != nil {
		return nil, err
	}

	return farmer, nil
}

func (s *DirectoryService) RegisterBuyer(name, phone, location string) (*models.Buyer, error) {
	buyer := &models.Buyer{
		Name:     name,
		Phone:    phone,
		Location: location,
	}

	if err := s.buyerRepo.Create(buyer); err != nil {
		return nil, err
	}

	return buyer, nil
}

func (s *DirectoryService) GetFarmer(id uint) (*models.Farmer, error) {
	farmer, err := s.farmerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if farmer == nil {
		return nil, ErrFarmerNotFound
	}
	return farmer, nil
}

func (s *DirectoryService) GetBuyer(id uint) (*models.Buyer, error) {
	buyer, err := s.buyerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, ErrBuyerNotFound
	}
	return buyer, nil
}
