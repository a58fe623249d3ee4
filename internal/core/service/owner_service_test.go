package service

import (
	"context"
	"testing"
	"time"

	"github.com/storeratings/storefront/internal/core/domain"
)

var ownerIdentity = domain.Identity{ID: 3, Name: "omar", Role: domain.RoleStoreOwner}

func ownerFixture() *stubBackend {
	rated := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return &stubBackend{
		stores: []domain.Store{
			{ID: 11, Name: "Omar's Fine Produce Market", OwnerID: 3, AvgRating: 4.5,
				Ratings: []domain.Rating{
					{ID: 1, UserID: 7, Rating: 5, UpdatedAt: rated,
						Users: &domain.RatingUser{Name: "Alice", Email: "alice@x.com", Address: "1 North Rd"}},
					{ID: 2, UserID: 8, Rating: 4, UpdatedAt: rated},
				}},
			{ID: 12, Name: "Omar's Second Location Deli", OwnerID: 3, AvgRating: 3.0},
			{ID: 13, Name: "Somebody Else's Shop", OwnerID: 4, AvgRating: 2.0},
		},
	}
}

func TestOwner_OverviewOnlyOwnStores(t *testing.T) {
	svc := NewOwnerService(ownerFixture())

	view, err := svc.Overview(context.Background(), "tok", ownerIdentity, "", false)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if view.TotalStores != 2 {
		t.Fatalf("expected 2 stores, got %d", view.TotalStores)
	}
	if view.OverallAverage != 3.75 {
		t.Fatalf("expected overall average 3.75, got %v", view.OverallAverage)
	}
}

func TestOwner_RaterRows(t *testing.T) {
	svc := NewOwnerService(ownerFixture())

	view, err := svc.Overview(context.Background(), "tok", ownerIdentity, "", false)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	raters := view.Stores[0].Raters
	if len(raters) != 2 {
		t.Fatalf("expected 2 raters, got %d", len(raters))
	}
	if raters[0].Name != "Alice" || raters[0].Rating != 5 || raters[0].RatingID != 1 {
		t.Fatalf("embedded user snapshot not mapped: %+v", raters[0])
	}
	// Row without an embedded snapshot gets a placeholder name.
	if raters[1].Name != "User 8" {
		t.Fatalf("expected placeholder name, got %q", raters[1].Name)
	}
}

func TestOwner_SearchMatchesStoreOrRater(t *testing.T) {
	svc := NewOwnerService(ownerFixture())
	ctx := context.Background()

	view, err := svc.Overview(ctx, "tok", ownerIdentity, "deli", false)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if view.TotalStores != 1 || view.Stores[0].ID != 12 {
		t.Fatalf("store name search wrong: %+v", view.Stores)
	}

	view, err = svc.Overview(ctx, "tok", ownerIdentity, "alice@x.com", false)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if view.TotalStores != 1 || view.Stores[0].ID != 11 {
		t.Fatalf("rater email search wrong: %+v", view.Stores)
	}
}
