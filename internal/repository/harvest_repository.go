package repository

import (
	"errors"

	"github.com/agrisync/agrisync/internal/models"
	"gorm.io/gorm"
)

// HarvestFilter narrows a harvest listing query. Zero values disable the
// corresponding condition.
type HarvestFilter struct {
	CropName    string
	MinQuantity float64
}

type HarvestRepository struct {
	db *gorm.DB
}

func NewHarvestRepository(db *gorm.DB) *HarvestRepository {
	return &HarvestRepository{db: db}
}

func (r *HarvestRepository) Create(harvest *models.Harvest) error {
	return r.db.Create(harvest).Error
}

func (r *HarvestRepository) FindByID(id uint) (*models.Harvest, error) {
	var harvest models.Harvest
	err := r.db.First(&harvest, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &harvest, nil
}

// List returns harvests matching the filter. Row order is not guaranteed.
func (r *HarvestRepository) List(filter HarvestFilter) ([]models.Harvest, error) {
	var harvests []models.Harvest

	db := r.db
	if filter.CropName != "" {
		db = db.Where("crop_name = ?", filter.CropName)
	}
	if filter.MinQuantity > 0 {
		db = db.Where("quantity >= ?", filter.MinQuantity)
	}

	err := db.Find(&harvests).Error
	return harvests, err
}

func (r *HarvestRepository) FindAll() ([]models.Harvest, error) {
	var harvests []models.Harvest
	err := r.db.Order("id ASC").Find(&harvests).Error
	return harvests, err
}

func (r *HarvestRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Harvest{}).Count(&count).Error
	return count, err
}
