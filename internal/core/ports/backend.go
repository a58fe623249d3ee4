package ports

import (
	"context"

	"github.com/storeratings/storefront/internal/core/domain"
)

// QueryOptions controls cached reads. Fresh bypasses the cache and forces a
// network fetch (the "refetch" affordance).
type QueryOptions struct {
	Fresh bool
}

// RegisterInput carries a new account. Register is a public endpoint and is
// also used by the admin view to create accounts of any role.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateStoreInput carries a new store with its assigned owner.
type CreateStoreInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID int    `json:"owner_id"`
}

// RatingInput carries a rating submission. ID is zero for a first rating
// and the existing rating's id for an update.
type RatingInput struct {
	ID      int `json:"id,omitempty"`
	Rating  int `json:"rating"`
	StoreID int `json:"store_id"`
	UserID  int `json:"user_id"`
}

// UpdatePasswordInput carries a password change for the signed-in account.
type UpdatePasswordInput struct {
	ID          int    `json:"id"`
	NewPassword string `json:"new_password"`
}

// Backend is the typed client for the remote Store Rating API. Queries are
// cached per (endpoint, arguments, session); mutations are not cached and
// invalidate the tags their endpoint declares. The token parameter is the
// opaque session token; implementations attach it as a bearer credential on
// authenticated endpoints and must never attach it to Register or Login.
type Backend interface {
	// Mutations (public).
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email, password string) (*domain.AuthPayload, error)

	// Mutations (authenticated).
	UpdatePassword(ctx context.Context, token string, input UpdatePasswordInput) (*domain.AuthPayload, error)
	CreateStore(ctx context.Context, token string, input CreateStoreInput) error
	CreateRating(ctx context.Context, token string, input RatingInput) error
	UpdateRating(ctx context.Context, token string, input RatingInput) error

	// Queries (authenticated, cached).
	ListStores(ctx context.Context, token string, opt QueryOptions) ([]domain.Store, error)
	StoresByOwner(ctx context.Context, token string, ownerID int, opt QueryOptions) ([]domain.Store, error)
	ListUsers(ctx context.Context, token string, opt QueryOptions) ([]domain.User, error)

	// EndSession drops every cached entry and refresh subscription the
	// session produced. Called on sign-out so nothing survives to the next
	// sign-in.
	EndSession(ctx context.Context, token string) error
}
