package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	BasketStatusNone     = "none"
	BasketStatusInWork   = "in-work"
	BasketStatusComplete = "complete"
)

type Restaurant struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Photo        string          `json:"photo"`
	Rating       decimal.Decimal `json:"rating"`
	Currency     string          `json:"currency"`
	TablesAmount int             `json:"tables_amount"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Dish struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	CategoryID   int             `json:"category_id"`
	Name         string          `json:"name"`
	Photo        string          `json:"photo"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Extra        ExtraMap        `json:"extra"`
}

// DishDetails is a Dish joined with its owning restaurant and category.
// Currency is deliberately absent: it belongs to the restaurant.
type DishDetails struct {
	ID             int             `json:"id"`
	RestaurantID   int             `json:"restaurant_id"`
	RestaurantName string          `json:"restaurant_name"`
	CategoryID     int             `json:"category_id"`
	CategoryName   string          `json:"category_name"`
	Name           string          `json:"name"`
	Photo          string          `json:"photo"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Extra          ExtraMap        `json:"extra"`
}

type ExtraMap map[string]ExtraOption

// ExtraOption is serialized as a ["label", "price"] pair to stay
// wire-compatible with the dishes.extra JSON column.
type ExtraOption struct {
	Label string
	Price decimal.Decimal
}

func (e ExtraOption) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Label, e.Price.StringFixed(2)})
}

func (e *ExtraOption) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return errors.New("extra must be a [label, price] pair")
	}
	if err := json.Unmarshal(raw[0], &e.Label); err != nil {
		return err
	}
	return e.Price.UnmarshalJSON(raw[1])
}

type OrderRequest struct {
	RestaurantID  int             `json:"restaurant_id"`
	TableID       int             `json:"table_id"`
	OrderDatetime time.Time       `json:"order_datetime"`
	OrderItems    []OrderLineItem `json:"order_items"`
}

type OrderLineItem struct {
	DishID int      `json:"dish_id"`
	Extras ExtraMap `json:"extras"`
}

// BasketLine is one priced line of the persisted order snapshot.
type BasketLine struct {
	DishID    int      `json:"dish_id"`
	DishPrice string   `json:"dish_price"`
	Extras    ExtraMap `json:"extras"`
}

type Basket struct {
	ID            string          `json:"id"`
	RestaurantID  int             `json:"restaurant_id"`
	TableID       int             `json:"table_id"`
	OrderDatetime time.Time       `json:"order_datetime"`
	OrderItems    []BasketLine    `json:"order_items"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	Waiter        *string         `json:"waiter"`
}

type BasketResponse struct {
	BasketID      string       `json:"basket_id"`
	RestaurantID  int          `json:"restaurant_id"`
	TableID       int          `json:"table_id"`
	OrderDatetime time.Time    `json:"order_datetime"`
	OrderItems    []BasketLine `json:"order_items"`
	TotalCost     string       `json:"total_cost"`
	Currency      string       `json:"currency"`
}

type WaiterCall struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	TableID      int       `json:"table_id"`
	Status       string    `json:"status"`
	CallDatetime time.Time `json:"call_datetime"`
}

type BasketEvent struct {
	Type         string    `json:"type"`
	BasketID     string    `json:"basket_id"`
	RestaurantID int       `json:"restaurant_id"`
	TableID      int       `json:"table_id"`
	DishIDs      []int     `json:"dish_ids"`
	TotalCost    string    `json:"total_cost"`
	Currency     string    `json:"currency"`
	Timestamp    time.Time `json:"timestamp"`
}

type DishPopularity struct {
	DishID       int     `json:"dish_id"`
	DishName     string  `json:"dish_name"`
	RestaurantID int     `json:"restaurant_id"`
	Score        float64 `json:"score"`
}
