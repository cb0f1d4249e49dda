package invoice

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}
