package invoice

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
	g.GET("/invoice/list", h.ListInvoices)
	g.POST("/invoice/create", h.CreateInvoice)
	g.POST("/invoice/update", h.UpdateInvoice)
	g.POST("/invoice/delete/:id", h.DeleteInvoice)
}

type createInvoiceRequest struct {
	Amount    float64 `json:"amount"`
	Status    string  `json:"status" validate:"required"`
	AccountID string  `json:"account_id" validate:"required,uuid"`
}

type updateInvoiceRequest struct {
	ID     string   `json:"id" validate:"required,uuid"`
	Amount *float64 `json:"amount"`
	Status *string  `json:"status"`
}

func (h *Handler) ListInvoices(c echo.Context) error {
	items, err := h.svc.ListInvoices(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list invoices")
	}
	if items == nil {
		items = []*Invoice{}
	}
	return api.Send(c, http.StatusOK, items, "Invoices Listed")
}

func (h *Handler) CreateInvoice(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, _ := uuid.Parse(req.AccountID)
	res, err := h.svc.CreateInvoice(c.Request().Context(), CreateInput{
		Amount:    req.Amount,
		Status:    req.Status,
		AccountID: accountID,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create invoice")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) UpdateInvoice(c echo.Context) error {
	var req updateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	id, _ := uuid.Parse(req.ID)
	res, err := h.svc.UpdateInvoice(c.Request().Context(), UpdateInput{
		ID:     id,
		Amount: req.Amount,
		Status: req.Status,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update invoice")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) DeleteInvoice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	res, err := h.svc.DeleteInvoice(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete invoice")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}
