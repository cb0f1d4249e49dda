// Package api defines the response envelope and the service-level outcome
// type shared by the domain handlers.
package api

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the success payload shape the dashboard expects.
type Envelope struct {
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
}

// Send writes a success envelope with the given transport status.
func Send(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, &Envelope{
		Data:       data,
		Message:    message,
		StatusCode: status,
	})
}
