package shipment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hlms/hlms/internal/platform/api"
)

// ErrWindow reports a delivery window whose end does not follow its start.
var ErrWindow = errors.New("shipment end must be after start")

type Service struct {
	shipments Repository
}

func NewService(shipments Repository) *Service {
	return &Service{shipments: shipments}
}

func (s *Service) ListShipments(ctx context.Context) ([]*Shipment, error) {
	return s.shipments.ListAll(ctx)
}

type CreateInput struct {
	Destination string
	Start       time.Time
	End         time.Time
	Description string
	OrderID     *uuid.UUID
	VehicleID   *uuid.UUID
}

func (s *Service) CreateShipment(ctx context.Context, in CreateInput) (*api.Result, error) {
	if !in.End.After(in.Start) {
		return nil, ErrWindow
	}
	sh := &Shipment{
		Destination: in.Destination,
		Start:       in.Start,
		End:         in.End,
		Description: in.Description,
		OrderID:     in.OrderID,
		VehicleID:   in.VehicleID,
	}
	if err := s.shipments.Create(ctx, sh); err != nil {
		return nil, err
	}
	return api.OK("Shipment Created"), nil
}

type UpdateInput struct {
	ID          uuid.UUID
	Destination *string
	Start       *time.Time
	End         *time.Time
	Description *string
	OrderID     *uuid.UUID
	VehicleID   *uuid.UUID
}

// UpdateShipment merges the supplied fields, then re-checks the delivery
// window on the merged result so a partial update cannot invert it.
func (s *Service) UpdateShipment(ctx context.Context, in UpdateInput) (*api.Result, error) {
	existing, err := s.shipments.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Destination != nil {
		existing.Destination = *in.Destination
	}
	if in.Start != nil {
		existing.Start = *in.Start
	}
	if in.End != nil {
		existing.End = *in.End
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.OrderID != nil {
		existing.OrderID = in.OrderID
	}
	if in.VehicleID != nil {
		existing.VehicleID = in.VehicleID
	}
	if !existing.End.After(existing.Start) {
		return nil, ErrWindow
	}
	if err := s.shipments.Update(ctx, existing); err != nil {
		return nil, err
	}
	return api.OK("Shipment Updated Successfully"), nil
}

func (s *Service) DeleteShipment(ctx context.Context, id uuid.UUID) (*api.Result, error) {
	if err := s.shipments.Delete(ctx, id); err != nil {
		return nil, err
	}
	return api.OK("Shipment Deleted Successfully"), nil
}
