package ports

import (
	"context"
	"time"

	"github.com/storeratings/storefront/internal/core/domain"
)

// DashboardQuery carries the regular dashboard's list controls. Filtering,
// sorting and paging happen over the cached listing, not at the backend.
type DashboardQuery struct {
	Search      string // case-insensitive substring on name or address
	RatingFloor int    // 0 = no filter; 1..5 matches floor(avgRating)
	SortBy      string // "name", "address" or "avgRating"
	Order       string // "asc" (default) or "desc"
	Page        int    // 1-based
	Limit       int    // rows per page (default 5)
	Fresh       bool
}

// StoreRow is one dashboard table row: the store plus the caller's own
// rating of it (0 when not rated yet).
type StoreRow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	AvgRating    float64 `json:"avg_rating"`
	TotalRatings int     `json:"total_ratings"`
	UserRating   int     `json:"user_rating"`
}

// DashboardView is the regular dashboard view model.
type DashboardView struct {
	TotalStores   int        `json:"total_stores"`
	AverageRating float64    `json:"average_rating"`
	FilteredCount int        `json:"filtered_count"`
	Page          int        `json:"page"`
	Limit         int        `json:"limit"`
	TotalPages    int        `json:"total_pages"`
	Stores        []StoreRow `json:"stores"`
}

// RatingOutcome reports whether a submission created a new rating or
// updated the existing one.
type RatingOutcome struct {
	Created  bool `json:"created"`
	RatingID int  `json:"rating_id,omitempty"`
}

// DashboardService shapes the regular user's view and routes a rating
// submission to create or update depending on whether the caller already
// rated the store.
type DashboardService interface {
	Overview(ctx context.Context, token string, ident domain.Identity, q DashboardQuery) (*DashboardView, error)
	SubmitRating(ctx context.Context, token string, ident domain.Identity, storeID, rating int) (*RatingOutcome, error)
}

// RaterRow is one entry in a store's rater list on the owner view.
type RaterRow struct {
	UserID      int       `json:"user_id"`
	RatingID    int       `json:"rating_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// OwnerStoreView is one of the caller's stores with everyone who rated it.
type OwnerStoreView struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	AverageRating float64    `json:"average_rating"`
	TotalRatings  int        `json:"total_ratings"`
	CreatedAt     time.Time  `json:"created_at"`
	Raters        []RaterRow `json:"raters"`
}

// OwnerView is the store-owner dashboard view model.
type OwnerView struct {
	TotalStores    int              `json:"total_stores"`
	OverallAverage float64          `json:"overall_average"`
	Stores         []OwnerStoreView `json:"stores"`
}

// OwnerService shapes the store-owner's view of their own stores.
type OwnerService interface {
	Overview(ctx context.Context, token string, ident domain.Identity, search string, fresh bool) (*OwnerView, error)
}

// AdminQuery carries the admin dashboard's list controls.
type AdminQuery struct {
	Search     string // substring on name, email or address
	RoleFilter string // "", "user", "store_owner" or "admin"
	Fresh      bool
}

// AdminStoreRow is a store with its owner resolved by name.
type AdminStoreRow struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Address   string  `json:"address"`
	OwnerID   int     `json:"owner_id"`
	OwnerName string  `json:"owner_name"`
	AvgRating float64 `json:"avg_rating"`
}

// AdminTotals are the headline counts on the admin dashboard.
type AdminTotals struct {
	Users       int `json:"users"`
	Stores      int `json:"stores"`
	NormalUsers int `json:"normal_users"`
	StoreOwners int `json:"store_owners"`
	Admins      int `json:"admins"`
}

// AdminView is the administrator dashboard view model. AvailableOwners are
// store-owner accounts not yet assigned to any store; only these may be
// chosen when creating a store.
type AdminView struct {
	Totals          AdminTotals     `json:"totals"`
	Users           []domain.User   `json:"users"`
	Stores          []AdminStoreRow `json:"stores"`
	AvailableOwners []domain.User   `json:"available_owners"`
}

// AdminService shapes the admin view and performs its two create
// operations.
type AdminService interface {
	Overview(ctx context.Context, token string, q AdminQuery) (*AdminView, error)
	CreateUser(ctx context.Context, input RegisterInput) error
	CreateStore(ctx context.Context, token string, input CreateStoreInput) error
}
