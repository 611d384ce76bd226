// FILE: internal/dto/cart_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CartItemRequest struct {
	Name string `json:"name" validate:"required"`
}

type CartLineResponse struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	EcoScore          int     `json:"eco_score"`
	CarbonFootprintKg float64 `json:"carbon_footprint_kg"`
	EcoAlternative    string  `json:"eco_alternative,omitempty"`
}

type CartResponse struct {
	Items             []CartLineResponse `json:"items"`
	Total             float64            `json:"total"`
	EcoScore          int                `json:"eco_score"`
	CarbonFootprintKg float64            `json:"carbon_footprint_kg"`
	EcoGrade          string             `json:"eco_grade"`
}

type WishlistResponse struct {
	Items []string `json:"items"`
}

type CheckoutResponse struct {
	PurchaseId        uuid.UUID          `json:"purchase_id"`
	Items             []CartLineResponse `json:"items"`
	Total             float64            `json:"total"`
	EcoScore          int                `json:"eco_score"`
	CarbonFootprintKg float64            `json:"carbon_footprint_kg"`
	EcoGrade          string             `json:"eco_grade"`
	CompletedAt       time.Time          `json:"completed_at"`
}

type PurchaseHistoryResponse struct {
	Purchases []CheckoutResponse `json:"purchases"`
}
