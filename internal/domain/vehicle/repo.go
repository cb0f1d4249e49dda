package vehicle

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	Create(ctx context.Context, v *Vehicle) error
	Update(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}
