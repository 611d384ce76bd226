package implementation

import (
	"context"
	"errors"
	"fmt"

	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/mapper"
	"project-nexus-be/internal/model"
	"project-nexus-be/internal/repository/contract"
	"project-nexus-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned by DecrementStock when the catalog cannot
// cover the requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	modelProduct := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(modelProduct).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(modelProduct)
	return nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	modelProduct := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Save(modelProduct).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(modelProduct)
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}).Error
}

func (r *ProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var modelProduct model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelProduct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelProduct), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var modelProducts []*model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelProducts).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelProducts), nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductRepositoryImpl) FindByNames(ctx context.Context, names []string) ([]*entity.Product, error) {
	if len(names) == 0 {
		return []*entity.Product{}, nil
	}
	var modelProducts []*model.Product
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&modelProducts).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelProducts), nil
}

func (r *ProductRepositoryImpl) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrInsufficientStock)
	}
	return nil
}

func (r *ProductRepositoryImpl) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
