package service

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"

	"tableside/internal/domain"

	"github.com/shopspring/decimal"
)

type CatalogService struct {
	repo CatalogRepository
	qr   QRGenerator
}

func NewCatalogService(repo CatalogRepository, qr QRGenerator) *CatalogService {
	return &CatalogService{repo: repo, qr: qr}
}

func (s *CatalogService) RestaurantPairs() (map[int]string, error) {
	return s.repo.ListRestaurantPairs()
}

func (s *CatalogService) CategoryPairs() (map[int]string, error) {
	return s.repo.ListCategoryPairs()
}

func (s *CatalogService) Restaurant(id int) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: restaurant ID %d", ErrRestaurantNotFound, id)
		}
		return nil, err
	}
	return rest, nil
}

func (s *CatalogService) Dishes(restaurantID, categoryID, dishID int) ([]domain.Dish, error) {
	dishes, err := s.repo.ListDishes(restaurantID, categoryID, dishID)
	if err != nil {
		return nil, err
	}
	if len(dishes) == 0 {
		return nil, fmt.Errorf("%w: restaurant ID %d", ErrNoDishes, restaurantID)
	}
	return dishes, nil
}

func (s *CatalogService) DishDetails(dishID int) (*domain.DishDetails, error) {
	details, err := s.repo.GetDishDetails(dishID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: dish ID %d", ErrDishNotFound, dishID)
		}
		return nil, err
	}
	return details, nil
}

type SeedSummary struct {
	RestaurantName string `json:"restaurant_name"`
	Categories     int    `json:"categories"`
	DishesAdded    int    `json:"dishes_added"`
}

var (
	seedAdjectives      = []string{"delicious", "exquisite", "mouth-watering", "succulent", "flavorful"}
	seedMainIngredients = []string{"chicken", "beef", "vegetable", "seafood", "pork"}
	seedCuisineStyles   = []string{"Italian", "Chinese", "French", "Japanese", "Mexican"}
	seedCookingMethods  = []string{"grilled", "steamed", "fried", "baked", "roasted"}
	seedAccompaniments  = []string{"rice", "noodles", "bread", "salad", "soup"}
	seedFlavors         = []string{"sweet and sour", "spicy", "savory", "tangy", "rich"}

	// Extra prices in cents, keys "1".."9".
	seedExtraCents = []int64{69, 99, 199, 299, 399, 499, 599, 699, 799}
)

// SeedMockDishes generates perCategory dishes for every known category of the
// given restaurant, skipping names that already exist.
func (s *CatalogService) SeedMockDishes(restaurantID, perCategory int) (*SeedSummary, error) {
	rest, err := s.Restaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.ListCategoryPairs()
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	existing := map[string]bool{}
	if dishes, err := s.repo.ListDishes(restaurantID, 0, 0); err == nil {
		for _, dish := range dishes {
			existing[dish.Name] = true
		}
	}

	extras := make(domain.ExtraMap, len(seedExtraCents))
	for i, cents := range seedExtraCents {
		key := fmt.Sprintf("%d", i+1)
		extras[key] = domain.ExtraOption{
			Label: fmt.Sprintf("%s-%d", rest.Name, i+1),
			Price: decimal.New(cents, -2),
		}
	}

	added := 0
	for categoryID, categoryName := range categories {
		for j := 1; j <= perCategory; j++ {
			name := fmt.Sprintf("%s %s %d", rest.Name, categoryName, j)
			for n := j; existing[name]; n++ {
				name = fmt.Sprintf("%s %s %d", rest.Name, categoryName, n+1)
			}
			existing[name] = true

			dish := &domain.Dish{
				RestaurantID: restaurantID,
				CategoryID:   categoryID,
				Name:         name,
				Description:  mockDescription(name),
				Price:        decimal.New(int64(100+rand.Intn(1900)), -2),
				Extra:        extras,
			}
			if err := s.repo.CreateDish(dish); err != nil {
				return nil, fmt.Errorf("seed dish %q: %w", name, err)
			}
			added++
		}
	}

	return &SeedSummary{
		RestaurantName: rest.Name,
		Categories:     len(categories),
		DishesAdded:    added,
	}, nil
}

func mockDescription(dishName string) string {
	pick := func(options []string) string { return options[rand.Intn(len(options))] }
	return fmt.Sprintf("Indulge in our %s, a %s %s dish, expertly crafted by our chef. "+
		"This %s specialty is %s to perfection, and served with %s. "+
		"A harmonious blend of %s, it's a true celebration of taste that promises to delight your palate.",
		dishName, pick(seedAdjectives), pick(seedMainIngredients), pick(seedCuisineStyles),
		pick(seedCookingMethods), pick(seedAccompaniments), pick(seedFlavors))
}

// TableQR renders a QR code pointing a physical table at its menu.
func (s *CatalogService) TableQR(restaurantID, tableID int) ([]byte, error) {
	rest, err := s.Restaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if tableID < 1 || tableID > rest.TablesAmount {
		return nil, fmt.Errorf("%w: table %d, restaurant has %d tables", ErrTableOutOfRange, tableID, rest.TablesAmount)
	}
	return s.qr.Generate(restaurantID, tableID)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
