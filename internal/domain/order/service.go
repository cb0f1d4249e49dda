package order

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hlms/hlms/internal/platform/api"
)

type Service struct {
	orders   Repository
	accounts AccountChecker
	log      zerolog.Logger
}

func NewService(orders Repository, accounts AccountChecker, log zerolog.Logger) *Service {
	return &Service{orders: orders, accounts: accounts, log: log}
}

func (s *Service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.orders.ListAll(ctx)
}

type CreateInput struct {
	AccountID   uuid.UUID
	Destination string
	Items       []LineItem
}

// CreateOrder verifies the owning account before inserting. A missing
// account is a business outcome, not a persistence failure.
//
// The success message reads "Vehicle Created"; the vendor-facing clients
// match on it, so it stays as shipped.
func (s *Service) CreateOrder(ctx context.Context, in CreateInput) (*api.Result, error) {
	ok, err := s.accounts.Exists(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return api.NotFound("Account Not Found"), nil
	}

	products, err := json.Marshal(in.Items)
	if err != nil {
		return nil, err
	}
	o := &Order{
		Destination: in.Destination,
		Products:    products,
		AccountID:   in.AccountID,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	s.log.Info().Str("order_id", o.ID.String()).Str("account_id", in.AccountID.String()).Msg("order created")
	return api.OK("Vehicle Created"), nil
}

type UpdateInput struct {
	ID          uuid.UUID
	Destination *string
	Items       []LineItem // nil means not supplied
}

// UpdateOrder merges the supplied fields over the stored row. Only fields
// present in the request are applied; absent ones keep their stored value.
func (s *Service) UpdateOrder(ctx context.Context, in UpdateInput) (*api.Result, error) {
	existing, err := s.orders.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Destination != nil {
		existing.Destination = *in.Destination
	}
	if in.Items != nil {
		products, err := json.Marshal(in.Items)
		if err != nil {
			return nil, err
		}
		existing.Products = products
	}
	if err := s.orders.Update(ctx, existing); err != nil {
		return nil, err
	}
	return api.OK("Orders Updated Successfully"), nil
}

func (s *Service) DeleteOrder(ctx context.Context, id uuid.UUID) (*api.Result, error) {
	if err := s.orders.Delete(ctx, id); err != nil {
		return nil, err
	}
	return api.OK("Orders Deleted Successfully"), nil
}
