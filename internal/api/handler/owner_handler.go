package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeratings/storefront/internal/core/ports"
)

type OwnerHandler struct {
	owners ports.OwnerService
}

func NewOwnerHandler(owners ports.OwnerService) *OwnerHandler {
	return &OwnerHandler{owners: owners}
}

type ownerResponse struct {
	Shell Shell            `json:"shell"`
	View  *ports.OwnerView `json:"view"`
}

// Overview renders the store-owner dashboard: the caller's own stores,
// each with its average and everyone who rated it.
//
// @Summary      Store-owner dashboard
// @Tags         owner
// @Produce      json
// @Param        search  query  string  false  "substring on store name or rater"
// @Param        fresh   query  bool    false  "bypass the cache"
// @Success      200  {object}  ownerResponse
// @Failure      502  {object}  map[string]string
// @Router       /store-owner-dashboard [get]
func (h *OwnerHandler) Overview(c echo.Context) error {
	ident, ok := ctxIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	view, err := h.owners.Overview(c.Request().Context(), ctxToken(c), ident,
		c.QueryParam("search"), c.QueryParam("fresh") == "true")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ownerResponse{Shell: NewShell(ident), View: view})
}
