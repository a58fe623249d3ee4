package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storeratings/storefront/internal/api/middleware"
	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/core/ports"
)

type stubDashboards struct {
	lastQuery ports.DashboardQuery
	lastToken string
	outcome   *ports.RatingOutcome
	err       error
}

func (s *stubDashboards) Overview(_ context.Context, token string, _ domain.Identity, q ports.DashboardQuery) (*ports.DashboardView, error) {
	s.lastToken = token
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	return &ports.DashboardView{TotalStores: 3}, nil
}

func (s *stubDashboards) SubmitRating(_ context.Context, token string, _ domain.Identity, storeID, rating int) (*ports.RatingOutcome, error) {
	s.lastToken = token
	if s.err != nil {
		return nil, s.err
	}
	if s.outcome != nil {
		return s.outcome, nil
	}
	return &ports.RatingOutcome{Created: true}, nil
}

func admittedContext(t *testing.T, method, path, body string, ident domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newJSONContext(t, method, path, body)
	c.Set(middleware.CtxIdentity, ident)
	c.Set(middleware.CtxToken, "tok")
	return c, rec
}

func TestDashboardHandler_QueryParamsReachService(t *testing.T) {
	stub := &stubDashboards{}
	h := NewDashboardHandler(stub)

	ident := domain.Identity{ID: 7, Name: "Ursula", Role: domain.RoleUser}
	c, rec := admittedContext(t, http.MethodGet,
		"/dashboard?search=north&rating=4&sort_by=avgRating&order=desc&page=2&limit=10&fresh=true", "", ident)

	if err := h.Overview(c); err != nil {
		t.Fatalf("overview: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	q := stub.lastQuery
	if q.Search != "north" || q.RatingFloor != 4 || q.SortBy != "avgRating" ||
		q.Order != "desc" || q.Page != 2 || q.Limit != 10 || !q.Fresh {
		t.Fatalf("query not parsed: %+v", q)
	}
	if stub.lastToken != "tok" {
		t.Fatalf("session token not forwarded")
	}
}

func TestDashboardHandler_ShellCarriesRoleMenu(t *testing.T) {
	h := NewDashboardHandler(&stubDashboards{})

	ident := domain.Identity{ID: 7, Name: "Ursula", Role: domain.RoleUser}
	c, rec := admittedContext(t, http.MethodGet, "/dashboard", "", ident)
	if err := h.Overview(c); err != nil {
		t.Fatalf("overview: %v", err)
	}

	var resp dashboardResponse
	if err := jsonDecode(rec, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Shell.Name != "Ursula" || resp.Shell.Role != domain.RoleUser {
		t.Fatalf("shell identity wrong: %+v", resp.Shell)
	}
	if len(resp.Shell.Menu) != 2 || resp.Shell.Menu[1].Path != "/update-password" {
		t.Fatalf("user menu wrong: %+v", resp.Shell.Menu)
	}
	if resp.Shell.SignOutPath != "/logout" {
		t.Fatalf("sign-out path missing")
	}
}

func TestDashboardHandler_SubmitRatingValidatesRange(t *testing.T) {
	stub := &stubDashboards{}
	h := NewDashboardHandler(stub)

	ident := domain.Identity{ID: 7, Role: domain.RoleUser}
	c, _ := admittedContext(t, http.MethodPost, "/dashboard/ratings",
		`{"store_id":11,"rating":6}`, ident)
	err := h.SubmitRating(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range rating, got %v", err)
	}
}

func TestDashboardHandler_SubmitRatingReportsOutcome(t *testing.T) {
	stub := &stubDashboards{outcome: &ports.RatingOutcome{Created: false, RatingID: 99}}
	h := NewDashboardHandler(stub)

	ident := domain.Identity{ID: 7, Role: domain.RoleUser}
	c, rec := admittedContext(t, http.MethodPost, "/dashboard/ratings",
		`{"store_id":11,"rating":5}`, ident)
	if err := h.SubmitRating(c); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var resp ratingResponse
	if err := jsonDecode(rec, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Outcome == nil || resp.Outcome.Created || resp.Outcome.RatingID != 99 {
		t.Fatalf("outcome wrong: %+v", resp.Outcome)
	}
}

func TestDashboardHandler_ServiceErrorPropagates(t *testing.T) {
	stub := &stubDashboards{err: domain.ErrBackendDown}
	h := NewDashboardHandler(stub)

	ident := domain.Identity{ID: 7, Role: domain.RoleUser}
	c, _ := admittedContext(t, http.MethodGet, "/dashboard", "", ident)
	if err := h.Overview(c); !errors.Is(err, domain.ErrBackendDown) {
		t.Fatalf("expected backend error to propagate, got %v", err)
	}
}
