package mapper

import (
	"encoding/json"
	"fmt"

	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/model"

	"gorm.io/datatypes"
)

type PurchaseMapper struct{}

func NewPurchaseMapper() *PurchaseMapper {
	return &PurchaseMapper{}
}

// ToEntity decodes the items JSON column, so it can fail on corrupt rows.
func (m *PurchaseMapper) ToEntity(p *model.Purchase) (*entity.Purchase, error) {
	if p == nil {
		return nil, nil
	}
	var items []entity.PurchaseItem
	if len(p.Items) > 0 {
		if err := json.Unmarshal(p.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to decode purchase items: %w", err)
		}
	}
	return &entity.Purchase{
		Id:                p.Id,
		UserId:            p.UserId,
		Items:             items,
		Total:             p.Total,
		EcoScore:          p.EcoScore,
		CarbonFootprintKg: p.CarbonFootprintKg,
		EcoGrade:          p.EcoGrade,
		CreatedAt:         p.CreatedAt,
	}, nil
}

func (m *PurchaseMapper) ToModel(p *entity.Purchase) (*model.Purchase, error) {
	if p == nil {
		return nil, nil
	}
	items, err := json.Marshal(p.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode purchase items: %w", err)
	}
	return &model.Purchase{
		Id:                p.Id,
		UserId:            p.UserId,
		Items:             datatypes.JSON(items),
		Total:             p.Total,
		EcoScore:          p.EcoScore,
		CarbonFootprintKg: p.CarbonFootprintKg,
		EcoGrade:          p.EcoGrade,
		CreatedAt:         p.CreatedAt,
	}, nil
}

func (m *PurchaseMapper) ToEntities(purchases []*model.Purchase) ([]*entity.Purchase, error) {
	entities := make([]*entity.Purchase, len(purchases))
	for i, p := range purchases {
		e, err := m.ToEntity(p)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
