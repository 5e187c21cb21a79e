package server

import (
	"errors"
	"net/http"

	"lucrofacil/internal/pkg/apperr"

	"github.com/labstack/echo/v4"
)

// Response is a standard API response structure
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Message string      `json:"message"`
}

// SuccessResponse creates a success response
func SuccessResponse(c echo.Context, statusCode int, data interface{}, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ErrorResponse creates an error response
func ErrorResponse(c echo.Context, statusCode int, err interface{}, message string) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Error:   err,
		Message: message,
	})
}

// DomainErrorResponse translates a domain error into the HTTP envelope.
// Unrecognized errors are reported as a generic upstream failure so internal
// details never leak to the client.
func DomainErrorResponse(c echo.Context, err error, message string) error {
	if ise, ok := apperr.IsInsufficientStock(err); ok {
		return c.JSON(http.StatusConflict, Response{
			Success: false,
			Error: map[string]interface{}{
				"code":          "INSUFFICIENT_STOCK",
				"current_stock": ise.CurrentStock,
				"requested":     ise.Requested,
			},
			Message: message,
		})
	}

	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		return ErrorResponse(c, http.StatusBadRequest, err.Error(), message)
	case errors.Is(err, apperr.ErrNotFound):
		return ErrorResponse(c, http.StatusNotFound, err.Error(), message)
	case errors.Is(err, apperr.ErrInvalidProfile):
		return ErrorResponse(c, http.StatusUnauthorized, err.Error(), message)
	default:
		return ErrorResponse(c, http.StatusInternalServerError, "upstream failure", message)
	}
}
