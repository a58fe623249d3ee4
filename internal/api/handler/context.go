package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/storeratings/storefront/internal/api/middleware"
	"github.com/storeratings/storefront/internal/core/domain"
)

// ctxIdentity reads the identity injected by the session guard.
func ctxIdentity(c echo.Context) (domain.Identity, bool) {
	ident, ok := c.Get(middleware.CtxIdentity).(domain.Identity)
	return ident, ok
}

// ctxToken reads the raw session token injected by the session guard.
func ctxToken(c echo.Context) string {
	token, _ := c.Get(middleware.CtxToken).(string)
	return token
}
