package order

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountChecker is the slice of the account repository the order service
// needs: an existence check before linking an order to an account.
type AccountChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
