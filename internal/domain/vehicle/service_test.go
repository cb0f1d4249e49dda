package vehicle

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	items map[uuid.UUID]*Vehicle
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Vehicle)}
}

func (m *mockRepo) add(driver, status string) *Vehicle {
	v := &Vehicle{
		ID:         uuid.New(),
		Name:       "Truck 1",
		DriverName: driver,
		PlateNo:    "ABC-1234",
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	m.items[v.ID] = v
	return v
}

func (m *mockRepo) ListAll(_ context.Context) ([]*Vehicle, error) {
	var result []*Vehicle
	for _, v := range m.items {
		result = append(result, v)
	}
	return result, nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Vehicle, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("vehicle %s not found", id)
	}
	return v, nil
}

func (m *mockRepo) Create(_ context.Context, v *Vehicle) error {
	v.ID = uuid.New()
	m.items[v.ID] = v
	return nil
}

func (m *mockRepo) Update(_ context.Context, v *Vehicle) error {
	if _, ok := m.items[v.ID]; !ok {
		return fmt.Errorf("vehicle %s not found", v.ID)
	}
	m.items[v.ID] = v
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("vehicle %s not found", id)
	}
	delete(m.items, id)
	return nil
}

func TestCreateVehicle_DefaultsToAvailable(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	res, err := svc.CreateVehicle(context.Background(), CreateInput{DriverName: "Juan Dela Cruz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Vehicle Created" {
		t.Errorf("unexpected message %q", res.Message)
	}
	for _, v := range repo.items {
		if v.Status != StatusAvailable {
			t.Errorf("expected default status AVAILABLE, got %q", v.Status)
		}
	}
}

func TestCreateVehicle_InvalidStatus(t *testing.T) {
	svc := NewService(newMockRepo())

	if _, err := svc.CreateVehicle(context.Background(), CreateInput{DriverName: "Juan", Status: "PARKED"}); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestUpdateVehicle_StatusTransition(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	v := repo.add("Juan Dela Cruz", StatusAvailable)

	status := StatusInUse
	res, err := svc.UpdateVehicle(context.Background(), UpdateInput{ID: v.ID, Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Vehicle Updated Successfully" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if repo.items[v.ID].Status != StatusInUse {
		t.Errorf("status not updated: %q", repo.items[v.ID].Status)
	}
	if repo.items[v.ID].DriverName != "Juan Dela Cruz" {
		t.Error("omitted driver name must keep its stored value")
	}
}

func TestUpdateVehicle_InvalidStatus(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	v := repo.add("Juan", StatusAvailable)

	status := "BROKEN"
	if _, err := svc.UpdateVehicle(context.Background(), UpdateInput{ID: v.ID, Status: &status}); err == nil {
		t.Error("expected error for invalid status")
	}
	if repo.items[v.ID].Status != StatusAvailable {
		t.Error("invalid status must not be written")
	}
}

func TestDeleteVehicle(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	v := repo.add("Juan", StatusAvailable)

	res, err := svc.DeleteVehicle(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Vehicle Deleted Successfully" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if len(repo.items) != 0 {
		t.Error("vehicle not deleted")
	}
}
