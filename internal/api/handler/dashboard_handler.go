package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storeratings/storefront/internal/core/ports"
)

type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

type dashboardResponse struct {
	Shell Shell                `json:"shell"`
	View  *ports.DashboardView `json:"view"`
}

type ratingResponse struct {
	Shell   Shell                `json:"shell"`
	Outcome *ports.RatingOutcome `json:"outcome"`
}

// Overview renders the regular user dashboard: the full store listing with
// search, rating filter, sorting and paging, plus the caller's own rating
// per store.
//
// @Summary      Regular user dashboard
// @Tags         dashboard
// @Produce      json
// @Param        search   query  string  false  "substring on name or address"
// @Param        rating   query  int     false  "exact star filter 1..5"
// @Param        sort_by  query  string  false  "name, address or avgRating"
// @Param        order    query  string  false  "asc or desc"
// @Param        page     query  int     false  "1-based page"
// @Param        limit    query  int     false  "rows per page"
// @Param        fresh    query  bool    false  "bypass the cache"
// @Success      200  {object}  dashboardResponse
// @Failure      502  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	ident, ok := ctxIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	q := ports.DashboardQuery{
		Search: c.QueryParam("search"),
		SortBy: c.QueryParam("sort_by"),
		Order:  c.QueryParam("order"),
		Fresh:  c.QueryParam("fresh") == "true",
	}
	q.RatingFloor, _ = strconv.Atoi(c.QueryParam("rating"))
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))
	q.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	view, err := h.dashboards.Overview(c.Request().Context(), ctxToken(c), ident, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{Shell: NewShell(ident), View: view})
}

// SubmitRating files or revises the caller's rating of a store. Whether it
// creates or updates is decided by whether the caller already rated it.
//
// @Summary      Submit or revise a rating
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      ratingRequest  true  "Rating"
// @Success      200   {object}  ratingResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /dashboard/ratings [post]
func (h *DashboardHandler) SubmitRating(c echo.Context) error {
	ident, ok := ctxIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	outcome, err := h.dashboards.SubmitRating(c.Request().Context(), ctxToken(c), ident, req.StoreID, req.Rating)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratingResponse{Shell: NewShell(ident), Outcome: outcome})
}
