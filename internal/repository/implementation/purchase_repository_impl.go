package implementation

import (
	"context"
	"errors"

	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/mapper"
	"project-nexus-be/internal/model"
	"project-nexus-be/internal/repository/contract"
	"project-nexus-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PurchaseMapper
}

func NewPurchaseRepository(db *gorm.DB) contract.PurchaseRepository {
	return &PurchaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewPurchaseMapper(),
	}
}

func (r *PurchaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PurchaseRepositoryImpl) Create(ctx context.Context, purchase *entity.Purchase) error {
	modelPurchase, err := r.mapper.ToModel(purchase)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(modelPurchase).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(modelPurchase)
	if err != nil {
		return err
	}
	*purchase = *saved
	return nil
}

func (r *PurchaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Purchase, error) {
	var modelPurchase model.Purchase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPurchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelPurchase)
}

func (r *PurchaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error) {
	var modelPurchases []*model.Purchase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelPurchases).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelPurchases)
}

func (r *PurchaseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Purchase{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PurchaseRepositoryImpl) TotalsForUser(ctx context.Context, userID uuid.UUID) (float64, float64, error) {
	var result struct {
		Total    float64
		CarbonKg float64
	}
	err := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Select("COALESCE(SUM(total), 0) as total, COALESCE(SUM(carbon_footprint_kg), 0) as carbon_kg").
		Where("user_id = ?", userID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Total, result.CarbonKg, nil
}
