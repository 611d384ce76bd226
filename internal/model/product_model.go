package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category          string    `gorm:"type:varchar(100);not null;index"`
	Price             float64   `gorm:"not null"`
	EcoScore          int       `gorm:"default:0"`
	CarbonFootprintKg float64   `gorm:"default:0"`
	Stock             int       `gorm:"default:0"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
