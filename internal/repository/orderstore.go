package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/ambulnz/pizza-ordering/internal/models"
)

var (
	ErrOrderExists = errors.New("order already exists")
)

// OrderStore persists orders and their line items.
// Writes are individual statements: an order row is created first and
// line items are inserted one by one, with no transaction across them.
type OrderStore interface {
	CreateOrder(ctx context.Context, id string) error
	InsertLineItem(ctx context.Context, item models.OrderLineItem) error
	ListOrders(ctx context.Context) ([]models.OrderRecord, error)
	ListLineItems(ctx context.Context, orderID string) ([]models.OrderLineItem, error)
}

// InMemoryOrderStore implements OrderStore with in-memory storage.
// Iteration order of ListOrders and ListLineItems follows insertion order.
type InMemoryOrderStore struct {
	mu       sync.RWMutex
	orderIDs []string
	items    map[string][]models.OrderLineItem
}

// NewInMemoryOrderStore creates an empty in-memory order store
func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		items: make(map[string][]models.OrderLineItem),
	}
}

// CreateOrder records a new, initially empty order
func (s *InMemoryOrderStore) CreateOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ErrOrderExists
	}
	s.orderIDs = append(s.orderIDs, id)
	s.items[id] = []models.OrderLineItem{}
	return nil
}

// InsertLineItem appends a line item to its order
func (s *InMemoryOrderStore) InsertLineItem(ctx context.Context, item models.OrderLineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.OrderID] = append(s.items[item.OrderID], item)
	return nil
}

// ListOrders returns all orders in creation order
func (s *InMemoryOrderStore) ListOrders(ctx context.Context) ([]models.OrderRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.OrderRecord, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		records = append(records, models.OrderRecord{ID: id})
	}
	return records, nil
}

// ListLineItems returns the line items of an order in insertion order
func (s *InMemoryOrderStore) ListLineItems(ctx context.Context, orderID string) ([]models.OrderLineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.items[orderID]
	items := make([]models.OrderLineItem, len(stored))
	copy(items, stored)
	return items, nil
}
