package domain

import "time"

// RatingUser is the embedded account snapshot carried with ratings on the
// store-owner view.
type RatingUser struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Rating is a single 1..5 score a user gave a store.
type Rating struct {
	ID        int         `json:"id"`
	UserID    int         `json:"user_id"`
	StoreID   int         `json:"store_id"`
	Rating    int         `json:"rating"`
	UpdatedAt time.Time   `json:"updated_at"`
	Users     *RatingUser `json:"users,omitempty"`
}
