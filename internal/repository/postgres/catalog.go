package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/ambulnz/pizza-ordering/internal/models"
	"github.com/ambulnz/pizza-ordering/internal/repository"
)

const bloomFalsePositiveRate = 0.01

// Catalog is the PostgreSQL implementation of repository.CatalogRepository.
// A bloom filter over pizza names is consulted before querying, so order
// requests full of unknown names are rejected without database round trips.
// The filter reflects the catalog at load time; call Reload after menu changes.
type Catalog struct {
	db *sql.DB

	mu     sync.RWMutex
	filter *bloom.BloomFilter
}

// NewCatalog creates a PostgreSQL-backed catalog and loads the name filter.
func NewCatalog(ctx context.Context, store *Store) (*Catalog, error) {
	c := &Catalog{db: store.DB()}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload rebuilds the bloom filter from the current set of pizza names.
func (c *Catalog) Reload(ctx context.Context) error {
	rows, err := c.db.QueryContext(ctx, `SELECT name FROM pizzas`)
	if err != nil {
		return fmt.Errorf("load pizza names: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan pizza name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate pizza names: %w", err)
	}

	size := uint(len(names))
	if size == 0 {
		size = 1
	}
	filter := bloom.NewWithEstimates(size, bloomFalsePositiveRate)
	for _, name := range names {
		filter.AddString(name)
	}

	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
	return nil
}

// GetAll returns the full menu.
func (c *Catalog) GetAll(ctx context.Context) ([]models.Pizza, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT name, price, description, category FROM pizzas ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	defer rows.Close()

	pizzas := make([]models.Pizza, 0)
	for rows.Next() {
		var p models.Pizza
		if err := rows.Scan(&p.Name, &p.Price, &p.Description, &p.Category); err != nil {
			return nil, fmt.Errorf("scan pizza: %w", err)
		}
		pizzas = append(pizzas, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pizzas: %w", err)
	}
	return pizzas, nil
}

// GetByName returns a single pizza by its exact name.
func (c *Catalog) GetByName(ctx context.Context, name string) (*models.Pizza, error) {
	if !c.mightContain(name) {
		return nil, repository.ErrPizzaNotFound
	}

	var p models.Pizza
	err := c.db.QueryRowContext(ctx, `
		SELECT name, price, description, category FROM pizzas WHERE name = $1
	`, name).Scan(&p.Name, &p.Price, &p.Description, &p.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrPizzaNotFound
		}
		return nil, fmt.Errorf("select pizza: %w", err)
	}
	return &p, nil
}

// GetPrice returns the current price for a pizza name.
func (c *Catalog) GetPrice(ctx context.Context, name string) (float64, error) {
	if !c.mightContain(name) {
		return 0, repository.ErrPizzaNotFound
	}

	var price float64
	err := c.db.QueryRowContext(ctx, `
		SELECT price FROM pizzas WHERE name = $1
	`, name).Scan(&price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repository.ErrPizzaNotFound
		}
		return 0, fmt.Errorf("select pizza price: %w", err)
	}
	return price, nil
}

func (c *Catalog) mightContain(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter.TestString(name)
}
