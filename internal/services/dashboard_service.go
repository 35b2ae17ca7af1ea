package services

import "github.com/agrisync/agrisync/internal/repository"

type DashboardStats struct {
	TotalFarmers  int64 `json:"total_farmers"`
	TotalHarvests int64 `json:"total_harvests"`
	TotalBuyers   int64 `json:"total_buyers"`
	TotalDemands  int64 `json:"total_demands"`
}

type DashboardService struct {
	farmerRepo  *repository.FarmerRepository
	buyerRepo   *repository.BuyerRepository
	harvestRepo *repository.HarvestRepository
	demandRepo  *repository.DemandRepository
}

func NewDashboardService(
	farmerRepo *repository.FarmerRepository,
	buyerRepo *repository.BuyerRepository,
	harvestRepo *repository.HarvestRepository,
	demandRepo *repository.DemandRepository,
) *DashboardService {
	return &DashboardService{
		farmerRepo:  farmerRepo,
		buyerRepo:   buyerRepo,
		harvestRepo: harvestRepo,
		demandRepo:  demandRepo,
	}
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalFarmers, err = s.farmerRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalHarvests, err = s.harvestRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalBuyers, err = s.buyerRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalDemands, err = s.demandRepo.Count(); err != nil {
		return nil, err
	}

	return &stats, nil
}
