package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/core/ports"
)

const (
	defaultPageSize = 5
	maxPageSize     = 100
)

// DashboardService shapes the regular user's store listing: text search,
// rating-floor filter, column sort and pagination are applied here, over
// the cached listing, so the backend sees one fetch per cache cycle.
type DashboardService struct {
	backend ports.Backend
}

func NewDashboardService(backend ports.Backend) *DashboardService {
	return &DashboardService{backend: backend}
}

func (s *DashboardService) Overview(ctx context.Context, token string, ident domain.Identity, q ports.DashboardQuery) (*ports.DashboardView, error) {
	stores, err := s.backend.ListStores(ctx, token, ports.QueryOptions{Fresh: q.Fresh})
	if err != nil {
		return nil, err
	}

	view := &ports.DashboardView{
		TotalStores:   len(stores),
		AverageRating: meanRating(stores),
	}

	filtered := filterStores(stores, q)
	sortStores(filtered, q.SortBy, q.Order)
	view.FilteredCount = len(filtered)

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	view.Page = page
	view.Limit = limit
	view.TotalPages = (len(filtered) + limit - 1) / limit

	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	view.Stores = make([]ports.StoreRow, 0, end-start)
	for _, st := range filtered[start:end] {
		row := ports.StoreRow{
			ID:           st.ID,
			Name:         st.Name,
			Email:        st.Email,
			Address:      st.Address,
			AvgRating:    float64(st.AvgRating),
			TotalRatings: len(st.Ratings),
		}
		if r, ok := st.RatingByUser(ident.ID); ok {
			row.UserRating = r.Rating
		}
		view.Stores = append(view.Stores, row)
	}

	return view, nil
}

// SubmitRating creates the caller's rating of a store, or updates the
// existing one when the cached listing already holds a rating with the
// caller's user id. Both paths invalidate the stores tag downstream, so
// the next render shows the new average.
func (s *DashboardService) SubmitRating(ctx context.Context, token string, ident domain.Identity, storeID, rating int) (*ports.RatingOutcome, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrRejected)
	}

	stores, err := s.backend.ListStores(ctx, token, ports.QueryOptions{})
	if err != nil {
		return nil, err
	}

	var target *domain.Store
	for i := range stores {
		if stores[i].ID == storeID {
			target = &stores[i]
			break
		}
	}
	if target == nil {
		return nil, domain.ErrStoreNotFound
	}

	if existing, ok := target.RatingByUser(ident.ID); ok {
		input := ports.RatingInput{
			ID:      existing.ID,
			Rating:  rating,
			StoreID: storeID,
			UserID:  ident.ID,
		}
		if err := s.backend.UpdateRating(ctx, token, input); err != nil {
			return nil, err
		}
		return &ports.RatingOutcome{Created: false, RatingID: existing.ID}, nil
	}

	input := ports.RatingInput{
		Rating:  rating,
		StoreID: storeID,
		UserID:  ident.ID,
	}
	if err := s.backend.CreateRating(ctx, token, input); err != nil {
		return nil, err
	}
	return &ports.RatingOutcome{Created: true}, nil
}

func filterStores(stores []domain.Store, q ports.DashboardQuery) []domain.Store {
	needle := strings.ToLower(q.Search)
	out := make([]domain.Store, 0, len(stores))
	for _, st := range stores {
		if needle != "" &&
			!strings.Contains(strings.ToLower(st.Name), needle) &&
			!strings.Contains(strings.ToLower(st.Address), needle) {
			continue
		}
		if q.RatingFloor > 0 && int(math.Floor(float64(st.AvgRating))) != q.RatingFloor {
			continue
		}
		out = append(out, st)
	}
	return out
}

func sortStores(stores []domain.Store, sortBy, order string) {
	if sortBy == "" {
		return
	}
	desc := order == "desc"
	cmp := func(a, b domain.Store) int {
		switch sortBy {
		case "avgRating":
			switch {
			case a.AvgRating < b.AvgRating:
				return -1
			case a.AvgRating > b.AvgRating:
				return 1
			}
			return 0
		case "address":
			return strings.Compare(strings.ToLower(a.Address), strings.ToLower(b.Address))
		default:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
	sort.SliceStable(stores, func(i, j int) bool {
		c := cmp(stores[i], stores[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func meanRating(stores []domain.Store) float64 {
	if len(stores) == 0 {
		return 0
	}
	var sum float64
	for _, st := range stores {
		sum += float64(st.AvgRating)
	}
	return math.Round(sum/float64(len(stores))*100) / 100
}
