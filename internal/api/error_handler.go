package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storeratings/storefront/internal/api/middleware"
	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/session"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Sends an expired or missing session back to login, clearing the
//     cookie so the next navigation starts clean.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, sessions *session.Store) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// A rejected token anywhere in a request means the session is
		// over. Same treatment as the guard: clear and return to login.
		if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrNoSession) {
			sessions.Clear(c)
			_ = c.Redirect(http.StatusFound, middleware.LoginPath)
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
	case errors.Is(err, domain.ErrStoreNotFound):
		return http.StatusNotFound, "store not found"
	case errors.Is(err, domain.ErrOwnerUnavailable):
		return http.StatusConflict, "owner already has a store"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrRejected):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrBackendDown):
		return http.StatusBadGateway, "store rating service is unreachable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
