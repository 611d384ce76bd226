package implementation

import (
	"context"

	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/mapper"
	"project-nexus-be/internal/model"
	"project-nexus-be/internal/repository/contract"
	"project-nexus-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InteractionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InteractionMapper
}

func NewInteractionRepository(db *gorm.DB) contract.InteractionRepository {
	return &InteractionRepositoryImpl{
		db:     db,
		mapper: mapper.NewInteractionMapper(),
	}
}

func (r *InteractionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InteractionRepositoryImpl) Create(ctx context.Context, interaction *entity.Interaction) error {
	modelInteraction := r.mapper.ToModel(interaction)
	if err := r.db.WithContext(ctx).Create(modelInteraction).Error; err != nil {
		return err
	}
	*interaction = *r.mapper.ToEntity(modelInteraction)
	return nil
}

func (r *InteractionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interaction, error) {
	var modelInteractions []*model.Interaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelInteractions).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelInteractions), nil
}

func (r *InteractionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Interaction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
