// FILE: internal/service/product_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/repository/specification"
	"project-nexus-be/internal/repository/unitofwork"
	"project-nexus-be/pkg/events"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type IProductService interface {
	List(ctx context.Context, query *dto.ListProductsQuery) ([]dto.ProductResponse, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*dto.ProductResponse, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
}

type productService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewProductService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IProductService {
	return &productService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (s *productService) List(ctx context.Context, query *dto.ListProductsQuery) ([]dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "name"},
		specification.Pagination{Limit: limit, Offset: query.Offset},
	}
	if query.Category != "" {
		specs = append(specs, specification.ByCategory{Category: query.Category})
	}
	if query.Search != "" {
		specs = append(specs, specification.NameContains{Query: strings.ToLower(query.Search)})
	}

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = *productToResponse(p)
	}
	return out, nil
}

func (s *productService) Get(ctx context.Context, userID string, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	_ = s.publisher.PublishInteraction(ctx, events.NewInteraction(events.TypeProductViewed, userID, map[string]interface{}{
		"product_name": product.Name,
	}))

	return productToResponse(product), nil
}

func (s *productService) Categories(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().Categories(ctx)
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProductRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("product name already exists")
	}

	product := &entity.Product{
		Id:                uuid.New(),
		Name:              req.Name,
		Category:          req.Category,
		Price:             req.Price,
		EcoScore:          req.EcoScore,
		CarbonFootprintKg: req.CarbonFootprintKg,
		Stock:             req.Stock,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

func productToResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:                p.Id,
		Name:              p.Name,
		Category:          p.Category,
		Price:             p.Price,
		EcoScore:          p.EcoScore,
		CarbonFootprintKg: p.CarbonFootprintKg,
		Stock:             p.Stock,
		CreatedAt:         p.CreatedAt,
	}
}
