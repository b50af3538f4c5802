package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ambulnz/pizza-ordering/internal/models"
	"github.com/ambulnz/pizza-ordering/internal/repository"
)

// OrderStore is the PostgreSQL implementation of repository.OrderStore.
// It keeps the same write shape as the in-memory store: one INSERT for
// the order row, then one INSERT per line item, no wrapping transaction.
type OrderStore struct {
	db *sql.DB
}

// NewOrderStore creates a PostgreSQL-backed order store.
func NewOrderStore(store *Store) *OrderStore {
	return &OrderStore{db: store.DB()}
}

func (s *OrderStore) CreateOrder(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (id) VALUES ($1)
	`, id)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrOrderExists
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (s *OrderStore) InsertLineItem(ctx context.Context, item models.OrderLineItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO order_items (id, order_id, pizza_name, quantity)
		VALUES ($1, $2, $3, $4)
	`, item.ID, item.OrderID, item.PizzaName, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

func (s *OrderStore) ListOrders(ctx context.Context) ([]models.OrderRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM orders ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	records := make([]models.OrderRecord, 0)
	for rows.Next() {
		var rec models.OrderRecord
		if err := rows.Scan(&rec.ID); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return records, nil
}

func (s *OrderStore) ListLineItems(ctx context.Context, orderID string) ([]models.OrderLineItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, pizza_name, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at, id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	items := make([]models.OrderLineItem, 0)
	for rows.Next() {
		var item models.OrderLineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.PizzaName, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return items, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
