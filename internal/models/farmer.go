package models

import "gorm.io/gorm"

type Farmer struct {
	gorm.Model
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `gorm:"not null" json:"phone"`
	Location string    `gorm:"not null" json:"location"`
	Harvests []Harvest `gorm:"foreignKey:FarmerID" json:"-"`
}
