package assistant

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts /prompt at the server root, outside the versioned
// API group.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/prompt", h.Prompt)
}

type promptRequest struct {
	Email string `json:"email"`
	Query string `json:"query"`
}

func (h *Handler) Prompt(c echo.Context) error {
	var req promptRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required.")
	}

	result, err := h.svc.Summarize(c.Request().Context(), req.Email, req.Query)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Account not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong.")
	}
	return c.JSON(http.StatusOK, map[string]string{"result": result})
}
