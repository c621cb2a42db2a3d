package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrCategoryNameRequired):
		return http.StatusBadRequest, "category name is required"
	case errors.Is(err, domain.ErrConnectionIDRequired):
		return http.StatusBadRequest, "connection id is required"
	case errors.Is(err, domain.ErrInvalidImport):
		return http.StatusBadRequest, "invalid data format"
	case errors.Is(err, domain.ErrInvalidTheme):
		return http.StatusBadRequest, "unknown theme"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, domain.ErrConnectionNotFound):
		return http.StatusNotFound, "connection not found"
	case errors.Is(err, domain.ErrNothingToExport):
		return http.StatusNotFound, "nothing to export"
	case errors.Is(err, domain.ErrNoHandoffRequest):
		return http.StatusNotFound, "no pending category modal request"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
