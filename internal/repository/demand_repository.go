package repository

import (
	"errors"

	"github.com/agrisync/agrisync/internal/models"
	"gorm.io/gorm"
)

type DemandRepository struct {
	db *gorm.DB
}

func NewDemandRepository(db *gorm.DB) *DemandRepository {
	return &DemandRepository{db: db}
}

func (r *DemandRepository) Create(demand *models.Demand) error {
	return r.db.Create(demand).Error
}

func (r *DemandRepository) FindByID(id uint) (*models.Demand, error) {
	var demand models.Demand
	err := r.db.First(&demand, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &demand, nil
}

func (r *DemandRepository) FindAll() ([]models.Demand, error) {
	var demands []models.Demand
	err := r.db.Order("id ASC").Find(&demands).Error
	return demands, err
}

func (r *DemandRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Demand{}).Count(&count).Error
	return count, err
}
