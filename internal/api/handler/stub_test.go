package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"

	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/core/ports"
)

func jsonDecode(rec *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}

// stubGateway implements ports.Backend with per-method hooks; unused
// methods fail safe by returning zero values.
type stubGateway struct {
	loginFn          func(ctx context.Context, email, password string) (*domain.AuthPayload, error)
	registerFn       func(ctx context.Context, input ports.RegisterInput) error
	updatePasswordFn func(ctx context.Context, token string, input ports.UpdatePasswordInput) (*domain.AuthPayload, error)
	endSessionFn     func(ctx context.Context, token string) error

	loginCalls    int
	registerCalls int
	endedSessions []string
}

func (s *stubGateway) Register(ctx context.Context, input ports.RegisterInput) error {
	s.registerCalls++
	if s.registerFn != nil {
		return s.registerFn(ctx, input)
	}
	return nil
}

func (s *stubGateway) Login(ctx context.Context, email, password string) (*domain.AuthPayload, error) {
	s.loginCalls++
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return &domain.AuthPayload{Token: "t"}, nil
}

func (s *stubGateway) UpdatePassword(ctx context.Context, token string, input ports.UpdatePasswordInput) (*domain.AuthPayload, error) {
	if s.updatePasswordFn != nil {
		return s.updatePasswordFn(ctx, token, input)
	}
	return &domain.AuthPayload{}, nil
}

func (s *stubGateway) CreateStore(context.Context, string, ports.CreateStoreInput) error { return nil }
func (s *stubGateway) CreateRating(context.Context, string, ports.RatingInput) error    { return nil }
func (s *stubGateway) UpdateRating(context.Context, string, ports.RatingInput) error    { return nil }

func (s *stubGateway) ListStores(context.Context, string, ports.QueryOptions) ([]domain.Store, error) {
	return nil, nil
}

func (s *stubGateway) StoresByOwner(context.Context, string, int, ports.QueryOptions) ([]domain.Store, error) {
	return nil, nil
}

func (s *stubGateway) ListUsers(context.Context, string, ports.QueryOptions) ([]domain.User, error) {
	return nil, nil
}

func (s *stubGateway) EndSession(ctx context.Context, token string) error {
	s.endedSessions = append(s.endedSessions, token)
	if s.endSessionFn != nil {
		return s.endSessionFn(ctx, token)
	}
	return nil
}
