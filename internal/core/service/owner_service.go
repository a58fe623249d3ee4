package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/core/ports"
)

// OwnerService shapes the store-owner dashboard: the caller's stores with
// the list of everyone who rated them.
type OwnerService struct {
	backend ports.Backend
}

func NewOwnerService(backend ports.Backend) *OwnerService {
	return &OwnerService{backend: backend}
}

func (s *OwnerService) Overview(ctx context.Context, token string, ident domain.Identity, search string, fresh bool) (*ports.OwnerView, error) {
	stores, err := s.backend.StoresByOwner(ctx, token, ident.ID, ports.QueryOptions{Fresh: fresh})
	if err != nil {
		return nil, err
	}

	view := &ports.OwnerView{Stores: make([]ports.OwnerStoreView, 0, len(stores))}
	var sum float64
	for _, st := range stores {
		sv := ports.OwnerStoreView{
			ID:            st.ID,
			Name:          st.Name,
			Email:         st.Email,
			Address:       st.Address,
			AverageRating: float64(st.AvgRating),
			TotalRatings:  len(st.Ratings),
			CreatedAt:     st.CreatedAt,
			Raters:        make([]ports.RaterRow, 0, len(st.Ratings)),
		}
		for _, r := range st.Ratings {
			sv.Raters = append(sv.Raters, raterRow(r))
		}
		sum += sv.AverageRating
		view.Stores = append(view.Stores, sv)
	}

	if search != "" {
		view.Stores = filterOwnerStores(view.Stores, search)
	}
	view.TotalStores = len(view.Stores)
	if len(stores) > 0 {
		view.OverallAverage = math.Round(sum/float64(len(stores))*100) / 100
	}

	return view, nil
}

// raterRow flattens a rating with its embedded account snapshot. Older
// backend rows may omit the snapshot; a placeholder keeps the list usable.
func raterRow(r domain.Rating) ports.RaterRow {
	row := ports.RaterRow{
		UserID:      r.UserID,
		RatingID:    r.ID,
		Rating:      r.Rating,
		SubmittedAt: r.UpdatedAt,
	}
	if r.Users != nil {
		row.Name = r.Users.Name
		row.Email = r.Users.Email
		row.Address = r.Users.Address
	}
	if row.Name == "" {
		row.Name = fmt.Sprintf("User %d", r.UserID)
	}
	return row
}

// filterOwnerStores keeps stores whose name matches, or with at least one
// rater whose name or email matches.
func filterOwnerStores(stores []ports.OwnerStoreView, search string) []ports.OwnerStoreView {
	needle := strings.ToLower(search)
	out := make([]ports.OwnerStoreView, 0, len(stores))
	for _, st := range stores {
		if strings.Contains(strings.ToLower(st.Name), needle) {
			out = append(out, st)
			continue
		}
		for _, r := range st.Raters {
			if strings.Contains(strings.ToLower(r.Name), needle) ||
				strings.Contains(strings.ToLower(r.Email), needle) {
				out = append(out, st)
				break
			}
		}
	}
	return out
}
