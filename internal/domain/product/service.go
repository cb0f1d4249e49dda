package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/hlms/hlms/internal/platform/api"
)

type Service struct {
	products Repository
	accounts AccountChecker
}

func NewService(products Repository, accounts AccountChecker) *Service {
	return &Service{products: products, accounts: accounts}
}

func (s *Service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.products.ListAll(ctx)
}

type CreateInput struct {
	AccountID uuid.UUID
	Name      string
	Price     float64
	Stocks    float64
}

// CreateProduct checks the submitting account exists but does not record
// it; the product table carries no account column.
func (s *Service) CreateProduct(ctx context.Context, in CreateInput) (*api.Result, error) {
	ok, err := s.accounts.Exists(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return api.NotFound("Account Not Found"), nil
	}
	p := &Product{Name: in.Name, Price: in.Price, Stocks: in.Stocks}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return api.OK("Product Created"), nil
}

type UpdateInput struct {
	ID     uuid.UUID
	Name   *string
	Price  *float64
	Stocks *float64
}

// UpdateProduct confirms the product exists before writing, then merges
// only the supplied fields. An explicit zero is stored as zero.
func (s *Service) UpdateProduct(ctx context.Context, in UpdateInput) (*api.Result, error) {
	ok, err := s.products.Exists(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return api.NotFound("Product Not Found"), nil
	}

	existing, err := s.products.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Price != nil {
		existing.Price = *in.Price
	}
	if in.Stocks != nil {
		existing.Stocks = *in.Stocks
	}
	if err := s.products.Update(ctx, existing); err != nil {
		return nil, err
	}
	return api.OK("Product Updated Successfully"), nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) (*api.Result, error) {
	if err := s.products.Delete(ctx, id); err != nil {
		return nil, err
	}
	return api.OK("Product Deleted Successfully"), nil
}
