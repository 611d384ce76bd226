package contract

import (
	"context"

	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Purchase, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// TotalsForUser sums spend and carbon across a shopper's history.
	TotalsForUser(ctx context.Context, userID uuid.UUID) (total float64, carbonKg float64, err error)
}
