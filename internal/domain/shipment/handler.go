package shipment

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hlms/hlms/internal/platform/api"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/shipment/list", h.ListShipments)
	g.POST("/shipment/create", h.CreateShipment)
	g.POST("/shipment/update", h.UpdateShipment)
	g.POST("/shipment/delete/:id", h.DeleteShipment)
}

type createShipmentRequest struct {
	Destination string    `json:"destination" validate:"required"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required"`
	Description string    `json:"description"`
	OrderID     *string   `json:"order_id" validate:"omitempty,uuid"`
	VehicleID   *string   `json:"vehicle_id" validate:"omitempty,uuid"`
}

type updateShipmentRequest struct {
	ID          string     `json:"id" validate:"required,uuid"`
	Destination *string    `json:"destination"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Description *string    `json:"description"`
	OrderID     *string    `json:"order_id" validate:"omitempty,uuid"`
	VehicleID   *string    `json:"vehicle_id" validate:"omitempty,uuid"`
}

func parseOptionalID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func (h *Handler) ListShipments(c echo.Context) error {
	items, err := h.svc.ListShipments(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list shipments")
	}
	if items == nil {
		items = []*Shipment{}
	}
	return api.Send(c, http.StatusOK, items, "Shipments Listed")
}

func (h *Handler) CreateShipment(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	res, err := h.svc.CreateShipment(c.Request().Context(), CreateInput{
		Destination: req.Destination,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
		OrderID:     parseOptionalID(req.OrderID),
		VehicleID:   parseOptionalID(req.VehicleID),
	})
	if err != nil {
		if errors.Is(err, ErrWindow) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create shipment")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) UpdateShipment(c echo.Context) error {
	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	id, _ := uuid.Parse(req.ID)
	res, err := h.svc.UpdateShipment(c.Request().Context(), UpdateInput{
		ID:          id,
		Destination: req.Destination,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
		OrderID:     parseOptionalID(req.OrderID),
		VehicleID:   parseOptionalID(req.VehicleID),
	})
	if err != nil {
		if errors.Is(err, ErrWindow) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update shipment")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) DeleteShipment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	res, err := h.svc.DeleteShipment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete shipment")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}
