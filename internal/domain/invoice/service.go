package invoice

import (
	"context"

	"github.com/google/uuid"

	"github.com/hlms/hlms/internal/platform/api"
)

type Service struct {
	invoices Repository
}

func NewService(invoices Repository) *Service {
	return &Service{invoices: invoices}
}

func (s *Service) ListInvoices(ctx context.Context) ([]*Invoice, error) {
	return s.invoices.ListAll(ctx)
}

type CreateInput struct {
	Amount    float64
	Status    string
	AccountID uuid.UUID
}

func (s *Service) CreateInvoice(ctx context.Context, in CreateInput) (*api.Result, error) {
	inv := &Invoice{Amount: in.Amount, Status: in.Status, AccountID: in.AccountID}
	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return api.OK("Invoice Created"), nil
}

type UpdateInput struct {
	ID     uuid.UUID
	Amount *float64
	Status *string
}

func (s *Service) UpdateInvoice(ctx context.Context, in UpdateInput) (*api.Result, error) {
	existing, err := s.invoices.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		existing.Amount = *in.Amount
	}
	if in.Status != nil {
		existing.Status = *in.Status
	}
	if err := s.invoices.Update(ctx, existing); err != nil {
		return nil, err
	}
	return api.OK("Invoice Updated Successfully"), nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) (*api.Result, error) {
	if err := s.invoices.Delete(ctx, id); err != nil {
		return nil, err
	}
	return api.OK("Invoice Deleted Successfully"), nil
}
