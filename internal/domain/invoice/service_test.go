package invoice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	items map[uuid.UUID]*Invoice
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Invoice)}
}

func (m *mockRepo) add(amount float64, status string) *Invoice {
	inv := &Invoice{
		ID:        uuid.New(),
		Amount:    amount,
		Status:    status,
		AccountID: uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.items[inv.ID] = inv
	return inv
}

func (m *mockRepo) ListAll(_ context.Context) ([]*Invoice, error) {
	var result []*Invoice
	for _, inv := range m.items {
		result = append(result, inv)
	}
	return result, nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Invoice, error) {
	inv, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s not found", id)
	}
	return inv, nil
}

func (m *mockRepo) Create(_ context.Context, inv *Invoice) error {
	inv.ID = uuid.New()
	m.items[inv.ID] = inv
	return nil
}

func (m *mockRepo) Update(_ context.Context, inv *Invoice) error {
	if _, ok := m.items[inv.ID]; !ok {
		return fmt.Errorf("invoice %s not found", inv.ID)
	}
	m.items[inv.ID] = inv
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("invoice %s not found", id)
	}
	delete(m.items, id)
	return nil
}

func TestCreateInvoice(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	res, err := svc.CreateInvoice(context.Background(), CreateInput{
		Amount:    1500.75,
		Status:    "PENDING",
		AccountID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Invoice Created" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if len(repo.items) != 1 {
		t.Error("invoice not persisted")
	}
}

func TestUpdateInvoice_PartialMerge(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	inv := repo.add(1500.75, "PENDING")

	status := "PAID"
	res, err := svc.UpdateInvoice(context.Background(), UpdateInput{ID: inv.ID, Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Invoice Updated Successfully" {
		t.Errorf("unexpected message %q", res.Message)
	}
	updated := repo.items[inv.ID]
	if updated.Status != "PAID" {
		t.Errorf("status not updated: %q", updated.Status)
	}
	if updated.Amount != 1500.75 {
		t.Error("omitted amount must keep its stored value")
	}
}

func TestUpdateInvoice_Missing(t *testing.T) {
	svc := NewService(newMockRepo())
	amount := 10.0
	if _, err := svc.UpdateInvoice(context.Background(), UpdateInput{ID: uuid.New(), Amount: &amount}); err == nil {
		t.Error("expected error for missing invoice")
	}
}

func TestDeleteInvoice(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	inv := repo.add(100, "PAID")

	res, err := svc.DeleteInvoice(context.Background(), inv.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Invoice Deleted Successfully" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if len(repo.items) != 0 {
		t.Error("invoice not deleted")
	}
}
