package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "tableside/internal/api/http"
	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	catalog   *mocks.CatalogServiceInterface
	baskets   *mocks.BasketServiceInterface
	waiter    *mocks.WaiterServiceInterface
	images    *mocks.ImageServiceInterface
	analytics *mocks.AnalyticsServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, *handlerMocks) {
	m := &handlerMocks{
		catalog:   mocks.NewCatalogServiceInterface(t),
		baskets:   mocks.NewBasketServiceInterface(t),
		waiter:    mocks.NewWaiterServiceInterface(t),
		images:    mocks.NewImageServiceInterface(t),
		analytics: mocks.NewAnalyticsServiceInterface(t),
	}

	handler := httpapi.NewHandler(m.catalog, m.baskets, m.waiter, m.images, m.analytics)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, m
}

func TestHandler_CalculateBasket(t *testing.T) {
	router, m := setupTestRouter(t)

	orderedAt := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		m.baskets.On("Calculate", mock.Anything, mock.Anything).Return(&domain.BasketResponse{
			BasketID:      "8f14e45f-ea92-4b23-bf1e-5fca24a33fb1",
			RestaurantID:  1,
			TableID:       5,
			OrderDatetime: orderedAt,
			TotalCost:     "11.49",
			Currency:      "USD",
		}, nil).Once()

		body := `{"restaurant_id":1,"table_id":5,"order_datetime":"2024-05-01T12:30:00Z",` +
			`"order_items":[{"dish_id":10,"extras":{"1":["extra cheese","1.50"]}}]}`
		req := httptest.NewRequest("POST", "/calculate_basket/", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.BasketResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "11.49", resp.TotalCost)
		assert.Equal(t, "USD", resp.Currency)
		assert.NotEmpty(t, resp.BasketID)
	})

	t.Run("error_dish_not_found_maps_to_404", func(t *testing.T) {
		m.baskets.On("Calculate", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: dish ID 99, restaurant ID 1", service.ErrDishNotFound)).Once()

		body := `{"restaurant_id":1,"table_id":5,"order_items":[{"dish_id":99}]}`
		req := httptest.NewRequest("POST", "/calculate_basket/", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "dish ID 99")
	})

	t.Run("error_malformed_body_maps_to_422", func(t *testing.T) {
		router, m := setupTestRouter(t)

		req := httptest.NewRequest("POST", "/calculate_basket/", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		m.baskets.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
	})

	t.Run("error_unknown_extra_maps_to_422", func(t *testing.T) {
		m.baskets.On("Calculate", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: key %q is not defined for dish 10", service.ErrUnknownExtra, "9")).Once()

		body := `{"restaurant_id":1,"table_id":5,"order_items":[{"dish_id":10,"extras":{"9":["mystery","0.69"]}}]}`
		req := httptest.NewRequest("POST", "/calculate_basket/", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHandler_CallWaiter(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("success", func(t *testing.T) {
		m.waiter.On("CallWaiter", mock.Anything, mock.Anything).Return(nil).Once()

		body := `{"restaurant_id":1,"table_id":5,"status":"check"}`
		req := httptest.NewRequest("POST", "/call_waiter/", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"check"`)
	})

	t.Run("error_invalid_status_maps_to_422", func(t *testing.T) {
		m.waiter.On("CallWaiter", mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: %q", service.ErrInvalidStatus, "dance")).Once()

		body := `{"restaurant_id":1,"table_id":5,"status":"dance"}`
		req := httptest.NewRequest("POST", "/call_waiter/", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("error_malformed_body_maps_to_422", func(t *testing.T) {
		router, m := setupTestRouter(t)

		req := httptest.NewRequest("POST", "/call_waiter/", bytes.NewBufferString("]["))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		m.waiter.AssertNotCalled(t, "CallWaiter", mock.Anything, mock.Anything)
	})
}

func TestHandler_CatalogEndpoints(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("all_restaurants", func(t *testing.T) {
		m.catalog.On("RestaurantPairs").Return(map[int]string{1: "Pasta Place", 2: "Sushi Spot"}, nil).Once()

		req := httptest.NewRequest("GET", "/all_restaurants/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pasta Place")
	})

	t.Run("all_categories_wrapped_in_categories_key", func(t *testing.T) {
		m.catalog.On("CategoryPairs").Return(map[int]string{1: "Pizza"}, nil).Once()

		req := httptest.NewRequest("GET", "/all_categories/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var payload map[string]map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "Pizza", payload["categories"]["1"])
	})

	t.Run("restaurant_missing_param_maps_to_422", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/restaurants/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		m.catalog.AssertNotCalled(t, "Restaurant", mock.Anything)
	})

	t.Run("restaurant_invalid_param_maps_to_422", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/restaurants/?restaurant_id=abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("dishes_with_optional_filters", func(t *testing.T) {
		m.catalog.On("Dishes", 1, 2, 0).Return([]domain.Dish{
			{ID: 10, Name: "Classic Burger", Price: decimal.RequireFromString("9.99")},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/dishes/?restaurant_id=1&category_id=2", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Classic Burger")
	})

	t.Run("dishes_empty_maps_to_404", func(t *testing.T) {
		m.catalog.On("Dishes", 7, 0, 0).
			Return(nil, fmt.Errorf("%w: restaurant ID 7", service.ErrNoDishes)).Once()

		req := httptest.NewRequest("GET", "/dishes/?restaurant_id=7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("dish_details", func(t *testing.T) {
		m.catalog.On("DishDetails", 10).Return(&domain.DishDetails{
			ID: 10, Name: "Classic Burger", RestaurantName: "Pasta Place", CategoryName: "Burgers",
			Price: decimal.RequireFromString("9.99"),
			Extra: domain.ExtraMap{"1": {Label: "extra cheese", Price: decimal.RequireFromString("1.50")}},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/dishes/details?dish_id=10", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		// extras keep the ["label", "price"] wire shape
		assert.Contains(t, rec.Body.String(), `["extra cheese","1.50"]`)
	})

	t.Run("add_mock_dishes", func(t *testing.T) {
		m.catalog.On("SeedMockDishes", 1, 5).Return(&service.SeedSummary{
			RestaurantName: "Pasta Place", Categories: 2, DishesAdded: 10,
		}, nil).Once()

		req := httptest.NewRequest("GET", "/add_mock_dishes/?restaurant_id=1&i=5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Added 10 dishes in 2 categories in restaurant Pasta Place")
	})

	t.Run("table_qrcode", func(t *testing.T) {
		m.catalog.On("TableQR", 1, 5).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

		req := httptest.NewRequest("GET", "/tables/qrcode?restaurant_id=1&table_id=5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})

	t.Run("table_qrcode_out_of_range_maps_to_422", func(t *testing.T) {
		m.catalog.On("TableQR", 1, 99).
			Return(nil, fmt.Errorf("%w: table 99, restaurant has 12 tables", service.ErrTableOutOfRange)).Once()

		req := httptest.NewRequest("GET", "/tables/qrcode?restaurant_id=1&table_id=99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHandler_GetBasket(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("success", func(t *testing.T) {
		m.baskets.On("LatestForTable", mock.Anything, 5).Return(&domain.Basket{
			ID:        "8f14e45f-ea92-4b23-bf1e-5fca24a33fb1",
			TableID:   5,
			TotalCost: decimal.RequireFromString("19.98"),
			Currency:  "USD",
			Status:    domain.BasketStatusNone,
		}, nil).Once()

		req := httptest.NewRequest("GET", "/baskets/?table_id=5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "19.98")
	})

	t.Run("error_no_basket_maps_to_404", func(t *testing.T) {
		m.baskets.On("LatestForTable", mock.Anything, 42).
			Return(nil, fmt.Errorf("%w: table ID 42", service.ErrBasketNotFound)).Once()

		req := httptest.NewRequest("GET", "/baskets/?table_id=42", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("error_missing_table_id_maps_to_422", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/baskets/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHandler_GetPopularDishes(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("success", func(t *testing.T) {
		m.analytics.On("PopularDishes", mock.Anything, 1, "today").Return([]domain.DishPopularity{
			{DishID: 10, DishName: "Classic Burger", RestaurantID: 1, Score: 5},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/analytics/popular?restaurant_id=1&period=today", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Classic Burger")
	})

	t.Run("empty_result_is_an_empty_array", func(t *testing.T) {
		m.analytics.On("PopularDishes", mock.Anything, 1, "").Return(nil, nil).Once()

		req := httptest.NewRequest("GET", "/analytics/popular?restaurant_id=1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("error_invalid_period_maps_to_422", func(t *testing.T) {
		m.analytics.On("PopularDishes", mock.Anything, 1, "last-century").
			Return(nil, fmt.Errorf("%w: %q", service.ErrInvalidPeriod, "last-century")).Once()

		req := httptest.NewRequest("GET", "/analytics/popular?restaurant_id=1&period=last-century", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHandler_GetImage(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("success", func(t *testing.T) {
		m.images.On("Photo", mock.Anything, "dish_1.jpeg").
			Return([]byte{0xff, 0xd8, 0xff}, "image/jpeg", nil).Once()

		req := httptest.NewRequest("GET", "/images/?path=dish_1.jpeg", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	})

	t.Run("error_missing_everywhere_maps_to_404", func(t *testing.T) {
		m.images.On("Photo", mock.Anything, "ghost.jpeg").
			Return(nil, "", fmt.Errorf("%w: %s", service.ErrImageNotFound, "ghost.jpeg")).Once()

		req := httptest.NewRequest("GET", "/images/?path=ghost.jpeg", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_HealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
