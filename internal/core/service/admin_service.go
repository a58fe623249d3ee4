package service

import (
	"context"
	"strings"

	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/core/ports"
)

// AdminService shapes the administrator dashboard and performs its create
// operations. User creation goes through the public register endpoint, the
// same one self-service sign-up uses.
type AdminService struct {
	backend ports.Backend
}

func NewAdminService(backend ports.Backend) *AdminService {
	return &AdminService{backend: backend}
}

func (s *AdminService) Overview(ctx context.Context, token string, q ports.AdminQuery) (*ports.AdminView, error) {
	users, err := s.backend.ListUsers(ctx, token, ports.QueryOptions{Fresh: q.Fresh})
	if err != nil {
		return nil, err
	}
	stores, err := s.backend.ListStores(ctx, token, ports.QueryOptions{Fresh: q.Fresh})
	if err != nil {
		return nil, err
	}

	view := &ports.AdminView{
		Totals: ports.AdminTotals{
			Users:  len(users),
			Stores: len(stores),
		},
	}
	ownerNames := make(map[int]string, len(users))
	for _, u := range users {
		ownerNames[u.ID] = u.Name
		switch u.Role {
		case domain.RoleUser:
			view.Totals.NormalUsers++
		case domain.RoleStoreOwner:
			view.Totals.StoreOwners++
		case domain.RoleAdmin:
			view.Totals.Admins++
		}
	}

	view.Users = filterUsers(users, q.Search, q.RoleFilter)
	view.AvailableOwners = availableOwners(users, stores)

	needle := strings.ToLower(q.Search)
	view.Stores = make([]ports.AdminStoreRow, 0, len(stores))
	for _, st := range stores {
		if needle != "" &&
			!strings.Contains(strings.ToLower(st.Name), needle) &&
			!strings.Contains(strings.ToLower(st.Email), needle) &&
			!strings.Contains(strings.ToLower(st.Address), needle) {
			continue
		}
		row := ports.AdminStoreRow{
			ID:        st.ID,
			Name:      st.Name,
			Email:     st.Email,
			Address:   st.Address,
			OwnerID:   st.OwnerID,
			AvgRating: float64(st.AvgRating),
			OwnerName: ownerNames[st.OwnerID],
		}
		if row.OwnerName == "" {
			row.OwnerName = "No Owner Assigned"
		}
		view.Stores = append(view.Stores, row)
	}

	return view, nil
}

func (s *AdminService) CreateUser(ctx context.Context, input ports.RegisterInput) error {
	return s.backend.Register(ctx, input)
}

// CreateStore checks the owner is a free store-owner account before the
// backend call, so the exclusion rule holds even when the form was bypassed.
func (s *AdminService) CreateStore(ctx context.Context, token string, input ports.CreateStoreInput) error {
	users, err := s.backend.ListUsers(ctx, token, ports.QueryOptions{})
	if err != nil {
		return err
	}
	stores, err := s.backend.ListStores(ctx, token, ports.QueryOptions{})
	if err != nil {
		return err
	}

	free := false
	for _, u := range availableOwners(users, stores) {
		if u.ID == input.OwnerID {
			free = true
			break
		}
	}
	if !free {
		return domain.ErrOwnerUnavailable
	}

	return s.backend.CreateStore(ctx, token, input)
}

func filterUsers(users []domain.User, search, role string) []domain.User {
	needle := strings.ToLower(search)
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) &&
			!strings.Contains(strings.ToLower(u.Address), needle) {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, u)
	}
	return out
}

// availableOwners returns store-owner accounts not yet assigned to a store;
// only these may be chosen when creating one.
func availableOwners(users []domain.User, stores []domain.Store) []domain.User {
	taken := make(map[int]struct{}, len(stores))
	for _, st := range stores {
		taken[st.OwnerID] = struct{}{}
	}
	out := make([]domain.User, 0)
	for _, u := range users {
		if u.Role != domain.RoleStoreOwner {
			continue
		}
		if _, ok := taken[u.ID]; ok {
			continue
		}
		out = append(out, u)
	}
	return out
}
