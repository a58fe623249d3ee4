package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// Decimal is a float that tolerates both JSON numbers and numeric strings.
// The backend serialises precomputed averages as strings ("4.50").
type Decimal float64

func (d *Decimal) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*d = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*d = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*d = Decimal(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*d = Decimal(f)
	return nil
}

// Store is a listing entry. AvgRating is precomputed by the backend; the
// gateway only displays it.
type Store struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   int       `json:"owner_id"`
	AvgRating Decimal   `json:"avgRating"`
	Ratings   []Rating  `json:"ratings"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingByUser returns the caller's rating of the store, if any. A user has
// at most one rating per store; a second submission updates the first.
func (s *Store) RatingByUser(userID int) (Rating, bool) {
	for _, r := range s.Ratings {
		if r.UserID == userID {
			return r, true
		}
	}
	return Rating{}, false
}
