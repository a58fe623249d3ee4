package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeratings/storefront/internal/core/ports"
)

type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type adminResponse struct {
	Shell Shell            `json:"shell"`
	View  *ports.AdminView `json:"view"`
}

// Overview renders the admin dashboard: headline totals, the user list and
// the store list with owners resolved, plus the owners still available for
// store assignment.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Param        search  query  string  false  "substring on name, email or address"
// @Param        role    query  string  false  "filter users by role"
// @Param        fresh   query  bool    false  "bypass the cache"
// @Success      200  {object}  adminResponse
// @Failure      502  {object}  map[string]string
// @Router       /admin [get]
func (h *AdminHandler) Overview(c echo.Context) error {
	ident, ok := ctxIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	q := ports.AdminQuery{
		Search:     c.QueryParam("search"),
		RoleFilter: c.QueryParam("role"),
		Fresh:      c.QueryParam("fresh") == "true",
	}
	view, err := h.admin.Overview(c.Request().Context(), ctxToken(c), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminResponse{Shell: NewShell(ident), View: view})
}

// CreateUser creates an account of any role from the admin dashboard. It
// reuses the public registration endpoint, so the same password rules
// apply.
//
// @Summary      Create a user account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "New account"
// @Success      201   {object}  statusResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
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
	if err := h.admin.CreateUser(c.Request().Context(), input); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, statusResponse{Message: "user created"})
}

// CreateStore creates a store assigned to an unclaimed store-owner
// account. Owners already holding a store are rejected before the backend
// is called.
//
// @Summary      Create a store
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createStoreRequest  true  "New store"
// @Success      201   {object}  statusResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/stores [post]
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	}
	if err := h.admin.CreateStore(c.Request().Context(), ctxToken(c), input); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, statusResponse{Message: "store created"})
}
