package vehicle

import (
	"net/http"

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
	g.GET("/vehicle/list", h.ListVehicles)
	g.POST("/vehicle/create", h.CreateVehicle)
	g.POST("/vehicle/update", h.UpdateVehicle)
	g.POST("/vehicle/delete/:id", h.DeleteVehicle)
}

type createVehicleRequest struct {
	Name       string `json:"name"`
	DriverName string `json:"driver_name" validate:"required"`
	PlateNo    string `json:"plate_no"`
	Status     string `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED IN_USE MAINTENANCE"`
}

type updateVehicleRequest struct {
	ID         string  `json:"id" validate:"required,uuid"`
	Name       *string `json:"name"`
	DriverName *string `json:"driver_name"`
	PlateNo    *string `json:"plate_no"`
	Status     *string `json:"status" validate:"omitempty,oneof=AVAILABLE RESERVED IN_USE MAINTENANCE"`
}

func (h *Handler) ListVehicles(c echo.Context) error {
	items, err := h.svc.ListVehicles(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list vehicles")
	}
	if items == nil {
		items = []*Vehicle{}
	}
	return api.Send(c, http.StatusOK, items, "Vehicles Listed")
}

func (h *Handler) CreateVehicle(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	res, err := h.svc.CreateVehicle(c.Request().Context(), CreateInput{
		Name:       req.Name,
		DriverName: req.DriverName,
		PlateNo:    req.PlateNo,
		Status:     req.Status,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create vehicle")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) UpdateVehicle(c echo.Context) error {
	var req updateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	id, _ := uuid.Parse(req.ID)
	res, err := h.svc.UpdateVehicle(c.Request().Context(), UpdateInput{
		ID:         id,
		Name:       req.Name,
		DriverName: req.DriverName,
		PlateNo:    req.PlateNo,
		Status:     req.Status,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update vehicle")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) DeleteVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	res, err := h.svc.DeleteVehicle(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete vehicle")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}
