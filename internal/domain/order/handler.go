package order

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
	g.GET("/orders/list", h.ListOrders)
	g.POST("/orders/create", h.CreateOrder)
	g.POST("/orders/update", h.UpdateOrder)
	g.POST("/orders/delete/:id", h.DeleteOrder)
}

type lineItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price"`
}

func (r lineItemRequest) toItem() LineItem {
	return LineItem{ProductID: r.ProductID, Name: r.Name, Quantity: r.Quantity, Price: r.Price}
}

type createOrderRequest struct {
	AccountID   string            `json:"account_id" validate:"required,uuid"`
	Destination string            `json:"destination" validate:"required"`
	Products    []lineItemRequest `json:"products" validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	ID          string             `json:"id" validate:"required,uuid"`
	Destination *string            `json:"destination"`
	Products    *[]lineItemRequest `json:"products" validate:"omitempty,min=1,dive"`
}

func (h *Handler) ListOrders(c echo.Context) error {
	items, err := h.svc.ListOrders(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list orders")
	}
	if items == nil {
		items = []*Order{}
	}
	return api.Send(c, http.StatusOK, items, "Orders Listed")
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, _ := uuid.Parse(req.AccountID)
	items := make([]LineItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, p.toItem())
	}
	res, err := h.svc.CreateOrder(c.Request().Context(), CreateInput{
		AccountID:   accountID,
		Destination: req.Destination,
		Items:       items,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create order")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) UpdateOrder(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	id, _ := uuid.Parse(req.ID)
	in := UpdateInput{ID: id, Destination: req.Destination}
	if req.Products != nil {
		items := make([]LineItem, 0, len(*req.Products))
		for _, p := range *req.Products {
			items = append(items, p.toItem())
		}
		in.Items = items
	}
	res, err := h.svc.UpdateOrder(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update order")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	res, err := h.svc.DeleteOrder(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete order")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}
