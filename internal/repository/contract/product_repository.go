package contract

import (
	"context"

	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindByNames resolves cart name refs to catalog rows in one query.
	FindByNames(ctx context.Context, names []string) ([]*entity.Product, error)
	// DecrementStock reduces stock and fails if not enough is on hand.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
	Categories(ctx context.Context) ([]string, error)
}
