package product

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
	g.GET("/product/list", h.ListProducts)
	g.POST("/product/create", h.CreateProduct)
	g.POST("/product/update", h.UpdateProduct)
	g.POST("/product/delete/:id", h.DeleteProduct)
}

type createProductRequest struct {
	AccountID string  `json:"account_id" validate:"required,uuid"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price"`
	Stocks    float64 `json:"stocks"`
}

type updateProductRequest struct {
	ID     string   `json:"id" validate:"required,uuid"`
	Name   *string  `json:"name"`
	Price  *float64 `json:"price"`
	Stocks *float64 `json:"stocks"`
}

func (h *Handler) ListProducts(c echo.Context) error {
	items, err := h.svc.ListProducts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list products")
	}
	if items == nil {
		items = []*Product{}
	}
	return api.Send(c, http.StatusOK, items, "Products Listed")
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, _ := uuid.Parse(req.AccountID)
	res, err := h.svc.CreateProduct(c.Request().Context(), CreateInput{
		AccountID: accountID,
		Name:      req.Name,
		Price:     req.Price,
		Stocks:    req.Stocks,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create product")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	id, _ := uuid.Parse(req.ID)
	res, err := h.svc.UpdateProduct(c.Request().Context(), UpdateInput{
		ID:     id,
		Name:   req.Name,
		Price:  req.Price,
		Stocks: req.Stocks,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	res, err := h.svc.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete product")
	}
	return api.Send(c, http.StatusOK, nil, res.Message)
}
