package service

import (
	"context"

	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/core/ports"
)

// stubBackend satisfies ports.Backend with canned data and records the
// mutations that were invoked.
type stubBackend struct {
	stores []domain.Store
	users  []domain.User

	registered     []ports.RegisterInput
	createdStores  []ports.CreateStoreInput
	createdRatings []ports.RatingInput
	updatedRatings []ports.RatingInput

	listStoresErr error
}

func (s *stubBackend) Register(_ context.Context, input ports.RegisterInput) error {
	s.registered = append(s.registered, input)
	return nil
}

func (s *stubBackend) Login(context.Context, string, string) (*domain.AuthPayload, error) {
	return &domain.AuthPayload{Token: "stub-token"}, nil
}

func (s *stubBackend) UpdatePassword(context.Context, string, ports.UpdatePasswordInput) (*domain.AuthPayload, error) {
	return &domain.AuthPayload{}, nil
}

func (s *stubBackend) CreateStore(_ context.Context, _ string, input ports.CreateStoreInput) error {
	s.createdStores = append(s.createdStores, input)
	return nil
}

func (s *stubBackend) CreateRating(_ context.Context, _ string, input ports.RatingInput) error {
	s.createdRatings = append(s.createdRatings, input)
	return nil
}

func (s *stubBackend) UpdateRating(_ context.Context, _ string, input ports.RatingInput) error {
	s.updatedRatings = append(s.updatedRatings, input)
	return nil
}

func (s *stubBackend) ListStores(context.Context, string, ports.QueryOptions) ([]domain.Store, error) {
	if s.listStoresErr != nil {
		return nil, s.listStoresErr
	}
	return s.stores, nil
}

func (s *stubBackend) StoresByOwner(_ context.Context, _ string, ownerID int, _ ports.QueryOptions) ([]domain.Store, error) {
	var out []domain.Store
	for _, st := range s.stores {
		if st.OwnerID == ownerID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *stubBackend) ListUsers(context.Context, string, ports.QueryOptions) ([]domain.User, error) {
	return s.users, nil
}

func (s *stubBackend) EndSession(context.Context, string) error { return nil }
