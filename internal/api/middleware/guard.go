// Package middleware contains the route guard: the policy layer deciding,
// for every navigation, whether the destination renders, the caller is sent
// to login, or the caller is sent back to their own dashboard.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeratings/storefront/internal/api/metrics"
	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/session"
)

// LoginPath is where every unauthenticated navigation lands.
const LoginPath = "/login"

// Context keys set by RequireSession for downstream handlers.
const (
	CtxIdentity = "identity"
	CtxToken    = "token"
)

// homeByRole is the canonical landing destination per role. Cross-role
// redirects always target the caller's own home, never login.
var homeByRole = map[string]string{
	domain.RoleUser:       "/dashboard",
	domain.RoleStoreOwner: "/store-owner-dashboard",
	domain.RoleAdmin:      "/admin",
}

// HomePath returns the home destination for a role, falling back to login
// for anything unknown.
func HomePath(role string) string {
	if p, ok := homeByRole[role]; ok {
		return p
	}
	return LoginPath
}

// RequireSession is the authenticated frame. Without a token the caller is
// redirected to login; a token that does not decode is cleared first so the
// next navigation cannot loop. On admission the identity and raw token are
// injected into the request context.
func RequireSession(sessions *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessions.Token(c)
			if token == "" {
				metrics.GuardRedirectsTotal.WithLabelValues("no_session").Inc()
				return c.Redirect(http.StatusFound, LoginPath)
			}

			ident, err := session.Decode(token)
			if err != nil {
				sessions.Clear(c)
				metrics.GuardRedirectsTotal.WithLabelValues("bad_token").Inc()
				return c.Redirect(http.StatusFound, LoginPath)
			}

			c.Set(CtxIdentity, ident)
			c.Set(CtxToken, token)
			return next(c)
		}
	}
}

// RequireRoles admits only the listed roles. An authenticated caller with
// the wrong role is returned to their own home destination.
func RequireRoles(sessions *session.Store, allowed ...string) echo.MiddlewareFunc {
	admit := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		admit[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := c.Get(CtxIdentity).(domain.Identity)
			if !ok {
				// Standalone use without the session frame.
				ident, ok = sessions.Identity(c)
				if !ok {
					sessions.Clear(c)
					metrics.GuardRedirectsTotal.WithLabelValues("no_session").Inc()
					return c.Redirect(http.StatusFound, LoginPath)
				}
				c.Set(CtxIdentity, ident)
				c.Set(CtxToken, sessions.Token(c))
			}

			if _, ok := admit[ident.Role]; !ok {
				metrics.GuardRedirectsTotal.WithLabelValues("role_mismatch").Inc()
				return c.Redirect(http.StatusFound, HomePath(ident.Role))
			}
			return next(c)
		}
	}
}

// AnonymousOnly is the reverse guard on the login and register
// destinations: a signed-in caller is sent to their home instead. A token
// that does not decode is cleared and the anonymous page renders.
func AnonymousOnly(sessions *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessions.Token(c)
			if token == "" {
				return next(c)
			}

			ident, err := session.Decode(token)
			if err != nil {
				sessions.Clear(c)
				return next(c)
			}

			metrics.GuardRedirectsTotal.WithLabelValues("already_signed_in").Inc()
			return c.Redirect(http.StatusFound, HomePath(ident.Role))
		}
	}
}
