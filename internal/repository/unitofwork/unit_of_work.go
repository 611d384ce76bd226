package unitofwork

import (
	"context"

	"project-nexus-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProductRepository() contract.ProductRepository
	PurchaseRepository() contract.PurchaseRepository
	InteractionRepository() contract.InteractionRepository
}
