// FILE: internal/dto/product_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProductResponse struct {
	Id                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Price             float64   `json:"price"`
	EcoScore          int       `json:"eco_score"`
	CarbonFootprintKg float64   `json:"carbon_footprint_kg"`
	Stock             int       `json:"stock"`
	CreatedAt         time.Time `json:"created_at"`
}

type ListProductsQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

type CreateProductRequest struct {
	Name              string  `json:"name" validate:"required"`
	Category          string  `json:"category" validate:"required"`
	Price             float64 `json:"price" validate:"required,gt=0"`
	EcoScore          int     `json:"eco_score" validate:"min=0,max=10"`
	CarbonFootprintKg float64 `json:"carbon_footprint_kg" validate:"min=0"`
	Stock             int     `json:"stock" validate:"min=0"`
}
