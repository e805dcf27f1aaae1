package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"tableside/internal/domain"
	"tableside/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Baskets   service.BasketServiceInterface
	Waiter    service.WaiterServiceInterface
	Images    service.ImageServiceInterface
	Analytics service.AnalyticsServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, baskets service.BasketServiceInterface,
	waiter service.WaiterServiceInterface, images service.ImageServiceInterface,
	analytics service.AnalyticsServiceInterface) *Handler {
	return &Handler{
		Catalog:   catalog,
		Baskets:   baskets,
		Waiter:    waiter,
		Images:    images,
		Analytics: analytics,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/all_restaurants/", h.getAllRestaurants).Methods("GET")
	r.HandleFunc("/all_categories/", h.getAllCategories).Methods("GET")
	r.HandleFunc("/restaurants/", h.getRestaurant).Methods("GET")
	r.HandleFunc("/dishes/", h.getDishes).Methods("GET")
	r.HandleFunc("/dishes/details", h.getDishDetails).Methods("GET")
	r.HandleFunc("/images/", h.getImage).Methods("GET")
	r.HandleFunc("/add_mock_dishes/", h.addMockDishes).Methods("GET")
	r.HandleFunc("/tables/qrcode", h.getTableQRCode).Methods("GET")

	r.HandleFunc("/calculate_basket/", h.calculateBasket).Methods("POST")
	r.HandleFunc("/baskets/", h.getBasket).Methods("GET")
	r.HandleFunc("/call_waiter/", h.callWaiter).Methods("POST")
	r.HandleFunc("/analytics/popular", h.getPopularDishes).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "tableside",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getAllRestaurants(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.Catalog.RestaurantPairs()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pairs)
}

func (h *Handler) getAllCategories(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.Catalog.CategoryPairs()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": pairs})
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := intQuery(w, r, "restaurant_id", true)
	if !ok {
		return
	}
	rest, err := h.Catalog.Restaurant(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":     rest.ID,
		"name":   rest.Name,
		"photo":  rest.Photo,
		"rating": rest.Rating,
	})
}

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := intQuery(w, r, "restaurant_id", true)
	if !ok {
		return
	}
	categoryID, ok := intQuery(w, r, "category_id", false)
	if !ok {
		return
	}
	dishID, ok := intQuery(w, r, "dish_id", false)
	if !ok {
		return
	}

	dishes, err := h.Catalog.Dishes(restaurantID, categoryID, dishID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDishDetails(w http.ResponseWriter, r *http.Request) {
	dishID, ok := intQuery(w, r, "dish_id", true)
	if !ok {
		return
	}
	details, err := h.Catalog.DishDetails(dishID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	data, mime, err := h.Images.Photo(r.Context(), path)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) addMockDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := intQuery(w, r, "restaurant_id", true)
	if !ok {
		return
	}
	perCategory, ok := intQuery(w, r, "i", true)
	if !ok {
		return
	}

	summary, err := h.Catalog.SeedMockDishes(restaurantID, perCategory)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Added " + strconv.Itoa(summary.DishesAdded) + " dishes in " +
			strconv.Itoa(summary.Categories) + " categories in restaurant " + summary.RestaurantName,
	})
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := intQuery(w, r, "restaurant_id", true)
	if !ok {
		return
	}
	tableID, ok := intQuery(w, r, "table_id", true)
	if !ok {
		return
	}

	qr, err := h.Catalog.TableQR(restaurantID, tableID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) calculateBasket(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid order payload: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	response, err := h.Baskets.Calculate(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getBasket(w http.ResponseWriter, r *http.Request) {
	tableID, ok := intQuery(w, r, "table_id", true)
	if !ok {
		return
	}
	basket, err := h.Baskets.LatestForTable(r.Context(), tableID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) callWaiter(w http.ResponseWriter, r *http.Request) {
	var call domain.WaiterCall
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		http.Error(w, "Invalid waiter call payload: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := h.Waiter.CallWaiter(r.Context(), &call); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func (h *Handler) getPopularDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := intQuery(w, r, "restaurant_id", true)
	if !ok {
		return
	}
	period := r.URL.Query().Get("period")

	dishes, err := h.Analytics.PopularDishes(r.Context(), restaurantID, period)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if dishes == nil {
		dishes = []domain.DishPopularity{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDishNotFound),
		errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrBasketNotFound),
		errors.Is(err, service.ErrNoDishes),
		errors.Is(err, service.ErrNoCategories),
		errors.Is(err, service.ErrImageNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrUnknownExtra),
		errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrTableOutOfRange):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// intQuery parses an integer query parameter, writing a 422 and returning
// ok=false when it is missing (if required) or malformed.
func intQuery(w http.ResponseWriter, r *http.Request, name string, required bool) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			http.Error(w, "Missing query parameter "+name, http.StatusUnprocessableEntity)
			return 0, false
		}
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "Invalid query parameter "+name, http.StatusUnprocessableEntity)
		return 0, false
	}
	return value, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
