package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storeratings/storefront/internal/core/ports"
	"github.com/storeratings/storefront/internal/session"
)

type PasswordHandler struct {
	backend  ports.Backend
	sessions *session.Store
	log      zerolog.Logger
}

func NewPasswordHandler(backend ports.Backend, sessions *session.Store, log zerolog.Logger) *PasswordHandler {
	return &PasswordHandler{backend: backend, sessions: sessions, log: log}
}

type passwordResponse struct {
	Shell   Shell  `json:"shell"`
	Message string `json:"message"`
}

// Page renders the password form inside the authenticated frame.
//
// @Summary      Password page
// @Tags         account
// @Produce      json
// @Success      200  {object}  passwordResponse
// @Router       /update-password [get]
func (h *PasswordHandler) Page(c echo.Context) error {
	ident, ok := ctxIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}
	return c.JSON(http.StatusOK, passwordResponse{Shell: NewShell(ident), Message: "update password"})
}

// Update changes the signed-in account's password. The call is awaited
// before any acknowledgement; when the backend rotates the token, the new
// one replaces the session cookie so the session survives the change.
//
// @Summary      Update password
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      updatePasswordRequest  true  "New password"
// @Success      200   {object}  passwordResponse
// @Failure      400   {object}  map[string]string
// @Router       /update-password [post]
func (h *PasswordHandler) Update(c echo.Context) error {
	ident, ok := ctxIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdatePasswordInput{ID: ident.ID, NewPassword: req.NewPassword}
	payload, err := h.backend.UpdatePassword(c.Request().Context(), ctxToken(c), input)
	if err != nil {
		return err
	}
	if payload != nil && payload.Token != "" {
		h.sessions.Install(c, payload.Token)
		h.log.Debug().Msg("session token rotated after password change")
	}
	return c.JSON(http.StatusOK, passwordResponse{Shell: NewShell(ident), Message: "password updated"})
}
