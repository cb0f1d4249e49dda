package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hlms/hlms/internal/platform/api"
)

type Service struct {
	vehicles Repository
}

func NewService(vehicles Repository) *Service {
	return &Service{vehicles: vehicles}
}

func (s *Service) ListVehicles(ctx context.Context) ([]*Vehicle, error) {
	return s.vehicles.ListAll(ctx)
}

type CreateInput struct {
	Name       string
	DriverName string
	PlateNo    string
	Status     string
}

func (s *Service) CreateVehicle(ctx context.Context, in CreateInput) (*api.Result, error) {
	status := in.Status
	if status == "" {
		status = StatusAvailable
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid vehicle status %q", status)
	}
	v := &Vehicle{Name: in.Name, DriverName: in.DriverName, PlateNo: in.PlateNo, Status: status}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return api.OK("Vehicle Created"), nil
}

type UpdateInput struct {
	ID         uuid.UUID
	Name       *string
	DriverName *string
	PlateNo    *string
	Status     *string
}

func (s *Service) UpdateVehicle(ctx context.Context, in UpdateInput) (*api.Result, error) {
	existing, err := s.vehicles.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.DriverName != nil {
		existing.DriverName = *in.DriverName
	}
	if in.PlateNo != nil {
		existing.PlateNo = *in.PlateNo
	}
	if in.Status != nil {
		if !validStatuses[*in.Status] {
			return nil, fmt.Errorf("invalid vehicle status %q", *in.Status)
		}
		existing.Status = *in.Status
	}
	if err := s.vehicles.Update(ctx, existing); err != nil {
		return nil, err
	}
	return api.OK("Vehicle Updated Successfully"), nil
}

func (s *Service) DeleteVehicle(ctx context.Context, id uuid.UUID) (*api.Result, error) {
	if err := s.vehicles.Delete(ctx, id); err != nil {
		return nil, err
	}
	return api.OK("Vehicle Deleted Successfully"), nil
}
