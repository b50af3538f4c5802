package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/ambulnz/pizza-ordering/internal/models"
)

var (
	ErrPizzaNotFound = errors.New("pizza not found")
)

// CatalogRepository defines the interface for pizza catalog access.
// The catalog is the single authority on prices.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.Pizza, error)
	GetByName(ctx context.Context, name string) (*models.Pizza, error)
	GetPrice(ctx context.Context, name string) (float64, error)
}

// InMemoryCatalog implements CatalogRepository with in-memory storage
type InMemoryCatalog struct {
	mu     sync.RWMutex
	pizzas map[string]models.Pizza
	names  []string
}

// NewInMemoryCatalog creates an in-memory catalog seeded with the default menu
func NewInMemoryCatalog() *InMemoryCatalog {
	seed := []models.Pizza{
		{Name: "Margherita", Price: 10.00, Description: "Tomato sauce, mozzarella and basil", Category: "Classic"},
		{Name: "Pepperoni", Price: 12.50, Description: "Tomato sauce, mozzarella and pepperoni", Category: "Classic"},
		{Name: "Quattro Formaggi", Price: 14.00, Description: "Mozzarella, gorgonzola, parmesan and provolone", Category: "Special"},
		{Name: "Calabresa", Price: 11.50, Description: "Calabresa sausage, onion and olives", Category: "Classic"},
		{Name: "Portuguesa", Price: 13.00, Description: "Ham, egg, onion, peas and olives", Category: "Special"},
		{Name: "Veggie", Price: 11.00, Description: "Tomato, bell pepper, mushroom and corn", Category: "Vegetarian"},
	}

	c := &InMemoryCatalog{
		pizzas: make(map[string]models.Pizza, len(seed)),
		names:  make([]string, 0, len(seed)),
	}
	for _, p := range seed {
		c.pizzas[p.Name] = p
		c.names = append(c.names, p.Name)
	}
	return c
}

// GetAll returns the menu in its seeded order
func (c *InMemoryCatalog) GetAll(ctx context.Context) ([]models.Pizza, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pizzas := make([]models.Pizza, 0, len(c.names))
	for _, name := range c.names {
		pizzas = append(pizzas, c.pizzas[name])
	}
	return pizzas, nil
}

// GetByName returns a pizza by its exact name
func (c *InMemoryCatalog) GetByName(ctx context.Context, name string) (*models.Pizza, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pizza, exists := c.pizzas[name]
	if !exists {
		return nil, ErrPizzaNotFound
	}
	return &pizza, nil
}

// GetPrice returns the current price for a pizza name
func (c *InMemoryCatalog) GetPrice(ctx context.Context, name string) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pizza, exists := c.pizzas[name]
	if !exists {
		return 0, ErrPizzaNotFound
	}
	return pizza.Price, nil
}

// SetPrice updates the price of an existing pizza or adds a new entry.
// Menu administration and tests use it; order processing never does.
func (c *InMemoryCatalog) SetPrice(name string, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pizza, exists := c.pizzas[name]
	if !exists {
		c.pizzas[name] = models.Pizza{Name: name, Price: price}
		c.names = append(c.names, name)
		return
	}
	pizza.Price = price
	c.pizzas[name] = pizza
}

// Remove deletes a pizza from the catalog. Existing orders keep their
// line items; listing will price them at zero afterwards.
func (c *InMemoryCatalog) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.pizzas[name]; !exists {
		return
	}
	delete(c.pizzas, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
}
