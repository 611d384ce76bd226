// FILE: internal/entity/purchase_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseItem is a line captured at checkout time. Prices are copied from
// the catalog so later catalog edits do not rewrite history.
type PurchaseItem struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	EcoScore          int     `json:"eco_score"`
	CarbonFootprintKg float64 `json:"carbon_footprint_kg"`
}

// Purchase is a completed checkout with its sustainability snapshot.
type Purchase struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Items             []PurchaseItem
	Total             float64
	EcoScore          int
	CarbonFootprintKg float64
	EcoGrade          string
	CreatedAt         time.Time
}
