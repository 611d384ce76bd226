package mapper

import (
	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:                p.Id,
		Name:              p.Name,
		Category:          p.Category,
		Price:             p.Price,
		EcoScore:          p.EcoScore,
		CarbonFootprintKg: p.CarbonFootprintKg,
		Stock:             p.Stock,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:                p.Id,
		Name:              p.Name,
		Category:          p.Category,
		Price:             p.Price,
		EcoScore:          p.EcoScore,
		CarbonFootprintKg: p.CarbonFootprintKg,
		Stock:             p.Stock,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProductMapper) ToModels(products []*entity.Product) []*model.Product {
	models := make([]*model.Product, len(products))
	for i, p := range products {
		models[i] = m.ToModel(p)
	}
	return models
}
