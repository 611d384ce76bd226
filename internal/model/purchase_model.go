package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Purchase struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Items             datatypes.JSON `gorm:"not null"`
	Total             float64        `gorm:"not null"`
	EcoScore          int            `gorm:"default:0"`
	CarbonFootprintKg float64        `gorm:"default:0"`
	EcoGrade          string         `gorm:"type:varchar(5)"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
}

func (Purchase) TableName() string {
	return "purchases"
}
