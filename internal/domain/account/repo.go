package account

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Account, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
