package shipment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*Shipment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Shipment, error)
	Create(ctx context.Context, sh *Shipment) error
	Update(ctx context.Context, sh *Shipment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
