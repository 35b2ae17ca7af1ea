package models

import "gorm.io/gorm"

type Demand struct {
	gorm.Model
	BuyerID          uint    `gorm:"not null;index" json:"buyer_id"`
	Buyer            Buyer   `gorm:"foreignKey:BuyerID" json:"-"`
	CropName         string  `gorm:"not null;index" json:"crop_name"`
	QuantityRequired float64 `gorm:"not null" json:"quantity_required"`
}
