package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type mockRepo struct {
	activities map[string]*Activity
}

func newMockRepo() *mockRepo {
	return &mockRepo{activities: make(map[string]*Activity)}
}

func (m *mockRepo) add(email string) *Activity {
	a := &Activity{AccountID: uuid.New(), Email: email, Name: "Vendor"}
	m.activities[email] = a
	return a
}

func (m *mockRepo) GetActivityByEmail(_ context.Context, email string) (*Activity, error) {
	a, ok := m.activities[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

type mockCompleter struct {
	lastPrompt string
	candidates []string
	err        error
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) ([]string, error) {
	m.lastPrompt = prompt
	return m.candidates, m.err
}

func mustProducts(t *testing.T, items []map[string]interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(items)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestSummarize_OrderShipmentInvoice(t *testing.T) {
	repo := newMockRepo()
	a := repo.add("vendor@example.com")
	a.Orders = []ActivityOrder{{
		ID: uuid.New(),
		Products: mustProducts(t, []map[string]interface{}{
			{"name": "Syringe 5ml"}, {"name": "Gauze Pads"},
		}),
		Shipment: &ActivityShipment{
			Destination: "St. Luke's Medical Center",
			Start:       time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
	}}
	a.Invoices = []ActivityInvoice{{Amount: 1500.5, Status: "PENDING"}}
	completer := &mockCompleter{}
	svc := NewService(repo, completer, zerolog.Nop())

	result, err := svc.Summarize(context.Background(), "vendor@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `You currently have an order of Syringe 5ml, Gauze Pads.` +
		` It is already on shipment to St. Luke's Medical Center, starting on 3/5/2026.` +
		` You currently have an invoice of PHP 1500.50 with status "PENDING".`
	if result != want {
		t.Errorf("context message mismatch:\n got %q\nwant %q", result, want)
	}
	if !strings.Contains(completer.lastPrompt, "hospital logistics and finance assistant") {
		t.Error("prompt missing assistant framing")
	}
	if !strings.Contains(completer.lastPrompt, want) {
		t.Error("prompt missing context message")
	}
	if !strings.Contains(completer.lastPrompt, "Summarize my current orders, shipments, and invoices.") {
		t.Error("empty query must use the default query")
	}
}

func TestSummarize_UsesFirstOrderAndInvoice(t *testing.T) {
	repo := newMockRepo()
	a := repo.add("vendor@example.com")
	a.Orders = []ActivityOrder{
		{Products: mustProducts(t, []map[string]interface{}{{"name": "First Order Item"}})},
		{Products: mustProducts(t, []map[string]interface{}{{"name": "Second Order Item"}})},
	}
	a.Invoices = []ActivityInvoice{
		{Amount: 1, Status: "FIRST"},
		{Amount: 2, Status: "SECOND"},
	}
	svc := NewService(repo, &mockCompleter{}, zerolog.Nop())

	result, err := svc.Summarize(context.Background(), "vendor@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "First Order Item") || strings.Contains(result, "Second Order Item") {
		t.Errorf("must summarize only the first order: %q", result)
	}
	if !strings.Contains(result, `"FIRST"`) || strings.Contains(result, `"SECOND"`) {
		t.Errorf("must summarize only the first invoice: %q", result)
	}
}

func TestSummarize_NoActivity(t *testing.T) {
	repo := newMockRepo()
	repo.add("vendor@example.com")
	svc := NewService(repo, &mockCompleter{}, zerolog.Nop())

	result, err := svc.Summarize(context.Background(), "vendor@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "You currently have no orders, shipments, or invoices." {
		t.Errorf("unexpected message %q", result)
	}
}

func TestSummarize_MalformedProducts(t *testing.T) {
	repo := newMockRepo()
	a := repo.add("vendor@example.com")
	a.Orders = []ActivityOrder{{Products: json.RawMessage(`{"not":"an array"}`)}}
	svc := NewService(repo, &mockCompleter{}, zerolog.Nop())

	result, err := svc.Summarize(context.Background(), "vendor@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "You currently have an order of an order." {
		t.Errorf("unexpected message %q", result)
	}
}

func TestSummarize_NamelessItemFallback(t *testing.T) {
	repo := newMockRepo()
	a := repo.add("vendor@example.com")
	a.Orders = []ActivityOrder{{Products: mustProducts(t, []map[string]interface{}{
		{"name": "Gloves"}, {"quantity": 3},
	})}}
	svc := NewService(repo, &mockCompleter{}, zerolog.Nop())

	result, err := svc.Summarize(context.Background(), "vendor@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "You currently have an order of Gloves, a product." {
		t.Errorf("unexpected message %q", result)
	}
}

func TestSummarize_PrefersModelCandidate(t *testing.T) {
	repo := newMockRepo()
	repo.add("vendor@example.com")
	completer := &mockCompleter{candidates: []string{"Here is your summary."}}
	svc := NewService(repo, completer, zerolog.Nop())

	result, err := svc.Summarize(context.Background(), "vendor@example.com", "What do I owe?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "Here is your summary." {
		t.Errorf("unexpected result %q", result)
	}
	if !strings.Contains(completer.lastPrompt, "What do I owe?") {
		t.Error("user query must reach the prompt")
	}
}

func TestSummarize_CompleterError(t *testing.T) {
	repo := newMockRepo()
	repo.add("vendor@example.com")
	svc := NewService(repo, &mockCompleter{err: errors.New("upstream 503")}, zerolog.Nop())

	if _, err := svc.Summarize(context.Background(), "vendor@example.com", ""); err == nil {
		t.Error("expected completer error to surface")
	}
}

func TestSummarize_UnknownAccount(t *testing.T) {
	svc := NewService(newMockRepo(), &mockCompleter{}, zerolog.Nop())

	_, err := svc.Summarize(context.Background(), "nobody@example.com", "")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
