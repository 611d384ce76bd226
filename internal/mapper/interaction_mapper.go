package mapper

import (
	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/model"

	"gorm.io/datatypes"
)

type InteractionMapper struct{}

func NewInteractionMapper() *InteractionMapper {
	return &InteractionMapper{}
}

func (m *InteractionMapper) ToEntity(i *model.Interaction) *entity.Interaction {
	if i == nil {
		return nil
	}
	return &entity.Interaction{
		Id:          i.Id,
		UserId:      i.UserId,
		EventType:   i.EventType,
		ProductName: i.ProductName,
		ContextData: map[string]interface{}(i.ContextData),
		CreatedAt:   i.CreatedAt,
	}
}

func (m *InteractionMapper) ToModel(i *entity.Interaction) *model.Interaction {
	if i == nil {
		return nil
	}
	return &model.Interaction{
		Id:          i.Id,
		UserId:      i.UserId,
		EventType:   i.EventType,
		ProductName: i.ProductName,
		ContextData: datatypes.JSONMap(i.ContextData),
		CreatedAt:   i.CreatedAt,
	}
}

func (m *InteractionMapper) ToEntities(interactions []*model.Interaction) []*entity.Interaction {
	entities := make([]*entity.Interaction, len(interactions))
	for i, it := range interactions {
		entities[i] = m.ToEntity(it)
	}
	return entities
}
