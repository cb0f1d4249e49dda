package product

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountChecker is satisfied by the account repository.
type AccountChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
