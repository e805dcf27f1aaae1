package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tableside/internal/domain"
)

const popularDishLimit = 10

// AnalyticsService ranks dishes by order count, serving from the redis
// popularity sets when warm and falling back to the baskets table.
type AnalyticsService struct {
	popularity PopularityTracker
	baskets    BasketRepository
	catalog    CatalogRepository
}

// NewAnalyticsService wires the ranking reader. popularity may be nil, in
// which case every request is answered from the database.
func NewAnalyticsService(popularity PopularityTracker, baskets BasketRepository, catalog CatalogRepository) *AnalyticsService {
	return &AnalyticsService{popularity: popularity, baskets: baskets, catalog: catalog}
}

// PopularDishes returns up to ten dishes for the restaurant. period is
// "today" (default) or "all".
func (s *AnalyticsService) PopularDishes(ctx context.Context, restaurantID int, period string) ([]domain.DishPopularity, error) {
	day := ""
	switch period {
	case "", "today":
		day = time.Now().Format("2006-01-02")
	case "all":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	if s.popularity != nil {
		if ranked, err := s.fromPopularitySets(ctx, restaurantID, day); err == nil && len(ranked) > 0 {
			return ranked, nil
		}
	}
	return s.baskets.PopularDishesFromBaskets(restaurantID, popularDishLimit)
}

func (s *AnalyticsService) fromPopularitySets(ctx context.Context, restaurantID int, day string) ([]domain.DishPopularity, error) {
	scores, err := s.popularity.TopDishes(ctx, restaurantID, day, popularDishLimit)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.DishPopularity, 0, len(scores))
	for dishID, score := range scores {
		details, err := s.catalog.GetDishDetails(dishID)
		if err != nil {
			continue
		}
		ranked = append(ranked, domain.DishPopularity{
			DishID:       dishID,
			DishName:     details.Name,
			RestaurantID: restaurantID,
			Score:        score,
		})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked, nil
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
