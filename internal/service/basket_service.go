package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"tableside/internal/domain"
	"tableside/internal/money"

	"github.com/google/uuid"
)

// BasketService prices an order request against the catalog and persists the
// result as one immutable basket row.
type BasketService struct {
	catalog      CatalogRepository
	baskets      BasketRepository
	publisher    BasketPublisher
	strictExtras bool
}

// NewBasketService wires the calculator. publisher may be nil; strictExtras
// switches extra pricing from trusting the caller to re-pricing against the
// dish's own extra catalog.
func NewBasketService(catalog CatalogRepository, baskets BasketRepository, publisher BasketPublisher, strictExtras bool) *BasketService {
	return &BasketService{
		catalog:      catalog,
		baskets:      baskets,
		publisher:    publisher,
		strictExtras: strictExtras,
	}
}

// Calculate processes line items in caller order, without deduplication.
// Any lookup failure aborts before a single row is written.
func (s *BasketService) Calculate(ctx context.Context, req *domain.OrderRequest) (*domain.BasketResponse, error) {
	total := money.Zero()
	currency := ""
	lines := make([]domain.BasketLine, 0, len(req.OrderItems))
	dishIDs := make([]int, 0, len(req.OrderItems))

	for _, item := range req.OrderItems {
		dish, err := s.catalog.GetDishDetails(item.DishID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w: dish ID %d, restaurant ID %d", ErrDishNotFound, item.DishID, req.RestaurantID)
			}
			return nil, fmt.Errorf("resolve dish %d: %w", item.DishID, err)
		}

		// Currency is resolved once, after the first successful dish lookup,
		// and reused for every remaining item.
		if currency == "" {
			if currency, err = s.resolveCurrency(req.RestaurantID); err != nil {
				return nil, err
			}
		}

		extras, err := s.chosenExtras(dish, item.Extras)
		if err != nil {
			return nil, err
		}

		lineCost := money.Quantize(dish.Price)
		for _, extra := range extras {
			lineCost = money.Add(lineCost, extra.Price)
		}
		total = money.Add(total, lineCost)

		lines = append(lines, domain.BasketLine{
			DishID:    dish.ID,
			DishPrice: money.Format(dish.Price),
			Extras:    extras,
		})
		dishIDs = append(dishIDs, dish.ID)
	}

	// An empty item list is a valid degenerate basket; the restaurant still
	// has to exist so the row carries a real currency.
	if currency == "" {
		var err error
		if currency, err = s.resolveCurrency(req.RestaurantID); err != nil {
			return nil, err
		}
	}

	basket := &domain.Basket{
		ID:            uuid.NewString(),
		RestaurantID:  req.RestaurantID,
		TableID:       req.TableID,
		OrderDatetime: req.OrderDatetime,
		OrderItems:    lines,
		TotalCost:     money.Quantize(total),
		Currency:      currency,
		Status:        domain.BasketStatusNone,
	}
	if err := s.baskets.SaveBasket(ctx, basket); err != nil {
		return nil, fmt.Errorf("save basket: %w", err)
	}

	if s.publisher != nil {
		event := domain.BasketEvent{
			Type:         "basket_created",
			BasketID:     basket.ID,
			RestaurantID: basket.RestaurantID,
			TableID:      basket.TableID,
			DishIDs:      dishIDs,
			TotalCost:    money.Format(total),
			Currency:     currency,
			Timestamp:    time.Now(),
		}
		if err := s.publisher.PublishBasketCreated(ctx, event); err != nil {
			log.Printf("Warning: failed to publish basket event for %s: %v", basket.ID, err)
		}
	}

	return &domain.BasketResponse{
		BasketID:      basket.ID,
		RestaurantID:  basket.RestaurantID,
		TableID:       basket.TableID,
		OrderDatetime: basket.OrderDatetime,
		OrderItems:    lines,
		TotalCost:     money.Format(total),
		Currency:      currency,
	}, nil
}

func (s *BasketService) resolveCurrency(restaurantID int) (string, error) {
	currency, err := s.catalog.GetRestaurantCurrency(restaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: restaurant ID %d", ErrRestaurantNotFound, restaurantID)
		}
		return "", fmt.Errorf("resolve currency for restaurant %d: %w", restaurantID, err)
	}
	return currency, nil
}

func (s *BasketService) chosenExtras(dish *domain.DishDetails, chosen domain.ExtraMap) (domain.ExtraMap, error) {
	out := make(domain.ExtraMap, len(chosen))
	for key, extra := range chosen {
		if s.strictExtras {
			catalogExtra, ok := dish.Extra[key]
			if !ok {
				return nil, fmt.Errorf("%w: key %q is not defined for dish %d", ErrUnknownExtra, key, dish.ID)
			}
			extra = catalogExtra
		}
		out[key] = domain.ExtraOption{Label: extra.Label, Price: money.Quantize(extra.Price)}
	}
	return out, nil
}

func (s *BasketService) LatestForTable(ctx context.Context, tableID int) (*domain.Basket, error) {
	basket, err := s.baskets.LatestBasketForTable(ctx, tableID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: table ID %d", ErrBasketNotFound, tableID)
		}
		return nil, err
	}
	return basket, nil
}

var _ BasketServiceInterface = (*BasketService)(nil)
