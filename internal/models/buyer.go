package models

import "gorm.io/gorm"

type Buyer struct {
	gorm.Model
	Name     string   `gorm:"not null" json:"name"`
	Phone    string   `gorm:"not null" json:"phone"`
	Location string   `gorm:"not null" json:"location"`
	Demands  []Demand `gorm:"foreignKey:BuyerID" json:"-"`
}
