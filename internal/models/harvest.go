package models

import (
	"time"

	"gorm.io/gorm"
)

// Harvest is a farmer's listing of produce expected on a given date.
// HarvestScore is fixed when the listing is created.
type Harvest struct {
	gorm.Model
	FarmerID            uint      `gorm:"not null;index" json:"farmer_id"`
	Farmer              Farmer    `gorm:"foreignKey:FarmerID" json:"-"`
	CropName            string    `gorm:"not null;index" json:"crop_name"`
	Quantity            float64   `gorm:"not null" json:"quantity"`
	ExpectedHarvestDate time.Time `gorm:"type:date;not null" json:"expected_harvest_date"`
	HarvestScore        int       `gorm:"not null" json:"harvest_score"`
}
