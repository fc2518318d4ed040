package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pdash/portfolio-dashboard/internal/store"
)

// errorResponse is the error body shape the dashboard UI expects.
type errorResponse struct {
	Error string `json:"error"`
}

// ValidationError represents a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// HTTPErrorHandler is the global error handler for echo. It maps the
// store's sentinel errors onto HTTP statuses and hides everything else
// behind a generic 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, msg := mapError(err)
	if jsonErr := c.JSON(status, errorResponse{Error: msg}); jsonErr != nil {
		slog.Error("failed to send error response", "error", jsonErr)
	}
}

func mapError(err error) (int, string) {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		msg, _ := echoErr.Message.(string)
		if msg == "" {
			msg = http.StatusText(echoErr.Code)
		}
		return echoErr.Code, msg
	}

	var validationErr *ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict, "The resource already exists or violates a constraint"
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	default:
		slog.Error("unhandled error", "error", err)
		return http.StatusInternalServerError, "An unexpected error occurred"
	}
}
