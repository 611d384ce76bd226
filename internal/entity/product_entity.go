// FILE: internal/entity/product_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id       uuid.UUID
	Name     string
	Category string
	Price    float64
	// EcoScore is the catalog's 0-10 sustainability rating.
	EcoScore int
	// CarbonFootprintKg is the estimated footprint of one unit.
	CarbonFootprintKg float64
	Stock             int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
