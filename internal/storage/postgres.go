package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"tableside/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListRestaurantPairs() (map[int]string, error) {
	rows, err := r.DB.Query("SELECT id, name FROM restaurants ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pairs := map[int]string{}
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			continue
		}
		pairs[id] = name
	}
	return pairs, rows.Err()
}

func (r *PostgresRepository) ListCategoryPairs() (map[int]string, error) {
	rows, err := r.DB.Query("SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pairs := map[int]string{}
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			continue
		}
		pairs[id] = name
	}
	return pairs, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(photo, ''), rating, currency, tables_amount
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Photo, &rest.Rating, &rest.Currency, &rest.TablesAmount)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantCurrency(id int) (string, error) {
	var currency string
	err := r.DB.QueryRow("SELECT currency FROM restaurants WHERE id = $1", id).Scan(&currency)
	if err != nil {
		return "", err
	}
	return currency, nil
}

// ListDishes filters by restaurant and, when non-zero, by category and dish id.
func (r *PostgresRepository) ListDishes(restaurantID, categoryID, dishID int) ([]domain.Dish, error) {
	query := `
		SELECT id, restaurant_id, category_id, name, COALESCE(photo, ''), description, price, extra
		FROM dishes
		WHERE restaurant_id = $1`
	args := []interface{}{restaurantID}

	if categoryID > 0 {
		args = append(args, categoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if dishID > 0 {
		args = append(args, dishID)
		query += fmt.Sprintf(" AND id = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		var extra []byte
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.CategoryID, &dish.Name,
			&dish.Photo, &dish.Description, &dish.Price, &extra); err != nil {
			continue
		}
		if len(extra) > 0 {
			if err := json.Unmarshal(extra, &dish.Extra); err != nil {
				return nil, fmt.Errorf("decode extra for dish %d: %w", dish.ID, err)
			}
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

// GetDishDetails resolves a dish together with its restaurant and category
// names in a single, explicitly joined query.
func (r *PostgresRepository) GetDishDetails(dishID int) (*domain.DishDetails, error) {
	var d domain.DishDetails
	var extra []byte
	err := r.DB.QueryRow(`
		SELECT d.id, d.restaurant_id, r.name, d.category_id, c.name,
		       d.name, COALESCE(d.photo, ''), d.description, d.price, d.extra
		FROM dishes d
		JOIN restaurants r ON r.id = d.restaurant_id
		JOIN categories c ON c.id = d.category_id
		WHERE d.id = $1`, dishID).
		Scan(&d.ID, &d.RestaurantID, &d.RestaurantName, &d.CategoryID, &d.CategoryName,
			&d.Name, &d.Photo, &d.Description, &d.Price, &extra)
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		if err := json.Unmarshal(extra, &d.Extra); err != nil {
			return nil, fmt.Errorf("decode extra for dish %d: %w", dishID, err)
		}
	}
	return &d, nil
}

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	extra, err := json.Marshal(dish.Extra)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(`
		INSERT INTO dishes (restaurant_id, category_id, name, photo, description, price, extra)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
		RETURNING id`,
		dish.RestaurantID, dish.CategoryID, dish.Name, dish.Photo, dish.Description, dish.Price, extra).
		Scan(&dish.ID)
}

// SaveBasket inserts the priced order snapshot. The insert runs inside its
// own transaction so a mid-flight failure leaves no partial row behind.
func (r *PostgresRepository) SaveBasket(ctx context.Context, basket *domain.Basket) error {
	items, err := json.Marshal(basket.OrderItems)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO baskets (id, restaurant_id, table_id, order_datetime, order_items, total_cost, currency, status, waiter)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		basket.ID, basket.RestaurantID, basket.TableID, basket.OrderDatetime,
		items, basket.TotalCost, basket.Currency, basket.Status, basket.Waiter); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) LatestBasketForTable(ctx context.Context, tableID int) (*domain.Basket, error) {
	var basket domain.Basket
	var items []byte
	var waiter sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, table_id, order_datetime, order_items, total_cost, currency, status, waiter
		FROM baskets
		WHERE table_id = $1
		ORDER BY order_datetime DESC
		LIMIT 1`, tableID).
		Scan(&basket.ID, &basket.RestaurantID, &basket.TableID, &basket.OrderDatetime,
			&items, &basket.TotalCost, &basket.Currency, &basket.Status, &waiter)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &basket.OrderItems); err != nil {
			return nil, fmt.Errorf("decode order items for basket %s: %w", basket.ID, err)
		}
	}
	if waiter.Valid {
		basket.Waiter = &waiter.String
	}
	return &basket, nil
}

func (r *PostgresRepository) CountBaskets(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM baskets").Scan(&count)
	return count, err
}

// PopularDishesFromBaskets ranks dishes by how often they appear in the
// persisted order snapshots. Fallback path when the popularity cache is cold.
func (r *PostgresRepository) PopularDishesFromBaskets(restaurantID, limit int) ([]domain.DishPopularity, error) {
	rows, err := r.DB.Query(`
		SELECT d.id, d.name, d.restaurant_id, COUNT(*) AS score
		FROM baskets b
		CROSS JOIN LATERAL jsonb_array_elements(b.order_items) AS item
		JOIN dishes d ON d.id = (item->>'dish_id')::int
		WHERE b.restaurant_id = $1
		GROUP BY d.id, d.name, d.restaurant_id
		ORDER BY score DESC
		LIMIT $2`, restaurantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.DishPopularity
	for rows.Next() {
		var d domain.DishPopularity
		if err := rows.Scan(&d.DishID, &d.DishName, &d.RestaurantID, &d.Score); err != nil {
			continue
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) UpsertWaiterCall(ctx context.Context, call *domain.WaiterCall) error {
	var existingID int
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM waiter_calls WHERE restaurant_id = $1 AND table_id = $2",
		call.RestaurantID, call.TableID).Scan(&existingID)

	switch {
	case err == nil:
		call.ID = existingID
		_, err = r.DB.ExecContext(ctx,
			"UPDATE waiter_calls SET status = $1, call_datetime = $2 WHERE id = $3",
			call.Status, call.CallDatetime, existingID)
		return err
	case errors.Is(err, sql.ErrNoRows):
		return r.DB.QueryRowContext(ctx, `
			INSERT INTO waiter_calls (restaurant_id, table_id, status, call_datetime)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			call.RestaurantID, call.TableID, call.Status, call.CallDatetime).Scan(&call.ID)
	default:
		return err
	}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			photo TEXT,
			rating NUMERIC(2,1) NOT NULL DEFAULT 0.0,
			currency TEXT NOT NULL DEFAULT 'USD',
			tables_amount INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			category_id INTEGER NOT NULL REFERENCES categories(id),
			name TEXT NOT NULL,
			photo TEXT,
			description TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			extra JSONB
		)`,
		`CREATE TABLE IF NOT EXISTS baskets (
			id UUID PRIMARY KEY,
			restaurant_id INTEGER NOT NULL,
			table_id INTEGER NOT NULL,
			order_datetime TIMESTAMPTZ NOT NULL,
			order_items JSONB,
			total_cost NUMERIC(10,2) NOT NULL,
			currency TEXT NOT NULL DEFAULT 'USD',
			status TEXT NOT NULL DEFAULT 'none' CHECK (status IN ('none', 'in-work', 'complete')),
			waiter TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS waiter_calls (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL,
			table_id INTEGER NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('call', 'clean', 'check')),
			call_datetime TIMESTAMPTZ NOT NULL,
			UNIQUE (restaurant_id, table_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
