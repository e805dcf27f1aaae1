package service

import (
	"context"
	"errors"

	"tableside/internal/domain"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrNoDishes           = errors.New("no dishes found")
	ErrNoCategories       = errors.New("no categories found")
	ErrBasketNotFound     = errors.New("basket not found")
	ErrUnknownExtra       = errors.New("unknown extra")
	ErrInvalidStatus      = errors.New("invalid waiter call status")
	ErrInvalidPeriod      = errors.New("invalid analytics period")
	ErrTableOutOfRange    = errors.New("table number out of range")
	ErrImageNotFound      = errors.New("image not found")
)

type CatalogRepository interface {
	ListRestaurantPairs() (map[int]string, error)
	ListCategoryPairs() (map[int]string, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	GetRestaurantCurrency(id int) (string, error)
	ListDishes(restaurantID, categoryID, dishID int) ([]domain.Dish, error)
	GetDishDetails(dishID int) (*domain.DishDetails, error)
	CreateDish(dish *domain.Dish) error
}

type BasketRepository interface {
	SaveBasket(ctx context.Context, basket *domain.Basket) error
	LatestBasketForTable(ctx context.Context, tableID int) (*domain.Basket, error)
	PopularDishesFromBaskets(restaurantID, limit int) ([]domain.DishPopularity, error)
}

type WaiterCallRepository interface {
	UpsertWaiterCall(ctx context.Context, call *domain.WaiterCall) error
}

type BasketPublisher interface {
	PublishBasketCreated(ctx context.Context, event domain.BasketEvent) error
}

type PopularityTracker interface {
	RecordOrder(ctx context.Context, restaurantID, dishID int, day string) error
	TopDishes(ctx context.Context, restaurantID int, day string, limit int) (map[int]float64, error)
}

type PhotoCache interface {
	PhotoKey(path string) string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

type BasketServiceInterface interface {
	Calculate(ctx context.Context, req *domain.OrderRequest) (*domain.BasketResponse, error)
	LatestForTable(ctx context.Context, tableID int) (*domain.Basket, error)
}

type CatalogServiceInterface interface {
	RestaurantPairs() (map[int]string, error)
	CategoryPairs() (map[int]string, error)
	Restaurant(id int) (*domain.Restaurant, error)
	Dishes(restaurantID, categoryID, dishID int) ([]domain.Dish, error)
	DishDetails(dishID int) (*domain.DishDetails, error)
	SeedMockDishes(restaurantID, perCategory int) (*SeedSummary, error)
	TableQR(restaurantID, tableID int) ([]byte, error)
}

type WaiterServiceInterface interface {
	CallWaiter(ctx context.Context, call *domain.WaiterCall) error
}

type ImageServiceInterface interface {
	Photo(ctx context.Context, path string) ([]byte, string, error)
}

type AnalyticsServiceInterface interface {
	PopularDishes(ctx context.Context, restaurantID int, period string) ([]domain.DishPopularity, error)
}
