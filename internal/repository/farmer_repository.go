package repository

import (
	"errors"

	"github.com/agrisync/agrisync/internal/models"
	"gorm.io/gorm"
)

type FarmerRepository struct {
	db *gorm.DB
}

func NewFarmerRepository(db *gorm.DB) *FarmerRepository {
	return &FarmerRepository{db: db}
}

func (r *FarmerRepository) Create(farmer *models.Farmer) error {
	return r.db.Create(farmer).Error
}

func (r *FarmerRepository) FindByID(id uint) (*models.Farmer, error) {
	var farmer models.Farmer
	err := r.db.First(&farmer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &farmer, nil
}

func (r *FarmerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Farmer{}).Count(&count).Error
	return count, err
}
