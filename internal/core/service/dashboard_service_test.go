package service

import (
	"context"
	"errors"
	"testing"

	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/core/ports"
)

func dashboardFixture() *stubBackend {
	return &stubBackend{
		stores: []domain.Store{
			{ID: 1, Name: "Alpha Books", Address: "1 North Rd", AvgRating: 4.5,
				Ratings: []domain.Rating{{ID: 10, UserID: 3, StoreID: 1, Rating: 5}}},
			{ID: 2, Name: "Beta Bakery", Address: "9 South Ave", AvgRating: 3.2,
				Ratings: []domain.Rating{{ID: 99, UserID: 7, StoreID: 2, Rating: 4}}},
			{ID: 3, Name: "Gamma Grocers", Address: "5 North Rd", AvgRating: 4.1},
		},
	}
}

var regularUser = domain.Identity{ID: 7, Name: "alice", Role: domain.RoleUser}

func TestDashboard_OverviewTotalsAndOwnRating(t *testing.T) {
	svc := NewDashboardService(dashboardFixture())

	view, err := svc.Overview(context.Background(), "tok", regularUser, ports.DashboardQuery{})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if view.TotalStores != 3 || view.FilteredCount != 3 {
		t.Fatalf("unexpected counts: %+v", view)
	}
	if view.AverageRating != 3.93 {
		t.Fatalf("expected mean 3.93, got %v", view.AverageRating)
	}
	if len(view.Stores) != 3 {
		t.Fatalf("expected all stores on page 1, got %d", len(view.Stores))
	}
	// Caller rated store 2 with 4; others are unrated.
	for _, row := range view.Stores {
		want := 0
		if row.ID == 2 {
			want = 4
		}
		if row.UserRating != want {
			t.Fatalf("store %d: expected user rating %d, got %d", row.ID, want, row.UserRating)
		}
	}
}

func TestDashboard_SearchAndRatingFilter(t *testing.T) {
	svc := NewDashboardService(dashboardFixture())
	ctx := context.Background()

	view, err := svc.Overview(ctx, "tok", regularUser, ports.DashboardQuery{Search: "north"})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if view.FilteredCount != 2 {
		t.Fatalf("address search: expected 2, got %d", view.FilteredCount)
	}

	view, err = svc.Overview(ctx, "tok", regularUser, ports.DashboardQuery{RatingFloor: 4})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	// floor(4.5)=4 and floor(4.1)=4 match; floor(3.2)=3 does not.
	if view.FilteredCount != 2 {
		t.Fatalf("rating filter: expected 2, got %d", view.FilteredCount)
	}
}

func TestDashboard_SortAndPaginate(t *testing.T) {
	svc := NewDashboardService(dashboardFixture())

	view, err := svc.Overview(context.Background(), "tok", regularUser, ports.DashboardQuery{
		SortBy: "avgRating", Order: "desc", Page: 1, Limit: 2,
	})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(view.Stores) != 2 || view.TotalPages != 2 {
		t.Fatalf("pagination wrong: rows=%d pages=%d", len(view.Stores), view.TotalPages)
	}
	if view.Stores[0].ID != 1 || view.Stores[1].ID != 3 {
		t.Fatalf("descending rating sort wrong: %+v", view.Stores)
	}

	view, err = svc.Overview(context.Background(), "tok", regularUser, ports.DashboardQuery{
		SortBy: "avgRating", Order: "desc", Page: 2, Limit: 2,
	})
	if err != nil {
		t.Fatalf("overview page 2: %v", err)
	}
	if len(view.Stores) != 1 || view.Stores[0].ID != 2 {
		t.Fatalf("page 2 wrong: %+v", view.Stores)
	}
}

func TestDashboard_FirstRatingCreates(t *testing.T) {
	backend := dashboardFixture()
	svc := NewDashboardService(backend)

	out, err := svc.SubmitRating(context.Background(), "tok", regularUser, 3, 4)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Created {
		t.Fatalf("expected create for unrated store")
	}
	if len(backend.createdRatings) != 1 || len(backend.updatedRatings) != 0 {
		t.Fatalf("wrong endpoint invoked: %+v / %+v", backend.createdRatings, backend.updatedRatings)
	}
	got := backend.createdRatings[0]
	if got.ID != 0 || got.Rating != 4 || got.StoreID != 3 || got.UserID != 7 {
		t.Fatalf("unexpected create payload: %+v", got)
	}
}

func TestDashboard_SecondRatingUpdates(t *testing.T) {
	backend := dashboardFixture()
	svc := NewDashboardService(backend)

	out, err := svc.SubmitRating(context.Background(), "tok", regularUser, 2, 5)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Created || out.RatingID != 99 {
		t.Fatalf("expected update of rating 99, got %+v", out)
	}
	if len(backend.updatedRatings) != 1 || len(backend.createdRatings) != 0 {
		t.Fatalf("wrong endpoint invoked")
	}
	got := backend.updatedRatings[0]
	if got.ID != 99 || got.Rating != 5 || got.StoreID != 2 || got.UserID != 7 {
		t.Fatalf("unexpected update payload: %+v", got)
	}
}

func TestDashboard_SubmitRatingValidation(t *testing.T) {
	svc := NewDashboardService(dashboardFixture())
	ctx := context.Background()

	if _, err := svc.SubmitRating(ctx, "tok", regularUser, 1, 0); !errors.Is(err, domain.ErrRejected) {
		t.Fatalf("expected ErrRejected for rating 0, got %v", err)
	}
	if _, err := svc.SubmitRating(ctx, "tok", regularUser, 1, 6); !errors.Is(err, domain.ErrRejected) {
		t.Fatalf("expected ErrRejected for rating 6, got %v", err)
	}
	if _, err := svc.SubmitRating(ctx, "tok", regularUser, 42, 3); !errors.Is(err, domain.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestDashboard_BackendErrorPropagates(t *testing.T) {
	backend := dashboardFixture()
	backend.listStoresErr = domain.ErrSessionExpired
	svc := NewDashboardService(backend)

	if _, err := svc.Overview(context.Background(), "tok", regularUser, ports.DashboardQuery{}); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}
