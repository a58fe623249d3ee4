// Package handler holds the HTTP destinations: sign-in, registration, the
// three role dashboards, and the account actions. Handlers bind and
// validate input, call a service or the backend client, and either render
// a JSON view model or redirect. Error mapping is centralized in the
// router's error handler.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storeratings/storefront/internal/api/metrics"
	"github.com/storeratings/storefront/internal/api/middleware"
	"github.com/storeratings/storefront/internal/core/ports"
	"github.com/storeratings/storefront/internal/session"
)

type AuthHandler struct {
	backend  ports.Backend
	sessions *session.Store
	log      zerolog.Logger
}

func NewAuthHandler(backend ports.Backend, sessions *session.Store, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{backend: backend, sessions: sessions, log: log}
}

// LoginPage renders the sign-in destination for anonymous callers.
//
// @Summary      Sign-in page
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"view":          "login",
		"register_path": "/register",
	})
}

// Login authenticates the caller, installs the session and redirects to
// the role home. A failed sign-in keeps the caller on the login page.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      302
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payload, err := h.backend.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues("failure").Inc()
		return err
	}

	h.sessions.Install(c, payload.Token)
	metrics.SignInsTotal.WithLabelValues("success").Inc()

	role := ""
	if payload.User != nil {
		role = payload.User.Role
	}
	if role == "" {
		if ident, derr := session.Decode(payload.Token); derr == nil {
			role = ident.Role
		}
	}
	h.log.Info().Str("role", role).Msg("sign-in")
	return c.Redirect(http.StatusFound, middleware.HomePath(role))
}

// RegisterPage renders the public registration destination.
//
// @Summary      Registration page
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /register [get]
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"view":       "register",
		"login_path": middleware.LoginPath,
	})
}

// Register creates a new account and sends the caller to sign in. The
// public form only offers the two self-service roles; the admin creates
// admin accounts from their own dashboard.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "New account"
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := h.backend.Register(c.Request().Context(), input); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// Logout ends the session: the backend drops the caller's cached data and
// refresh subscriptions, the cookie is cleared, and the caller lands on
// the login page. Order matters, the token is needed to purge the cache.
//
// @Summary      Sign out
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := ctxToken(c)
	if token == "" {
		token = h.sessions.Token(c)
	}
	if token != "" {
		if err := h.backend.EndSession(c.Request().Context(), token); err != nil {
			h.log.Warn().Err(err).Msg("session purge failed on sign-out")
		}
	}
	h.sessions.Clear(c)
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
