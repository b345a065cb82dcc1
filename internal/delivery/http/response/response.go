// Package response builds the unified JSON envelope for the HTTP delivery.
package response

import (
	"net/http"

	domainerrors "journal/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success writes the standard success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.Response{
		Success: true,
		Data:    data,
	})
}

// Error writes the standard error envelope. Handlers normally never call this
// directly; errors propagate to the terminal error handler instead.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}
