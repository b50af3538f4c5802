package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ambulnz/pizza-ordering/internal/idgen"
	"github.com/ambulnz/pizza-ordering/internal/metrics"
	"github.com/ambulnz/pizza-ordering/internal/models"
	"github.com/ambulnz/pizza-ordering/internal/repository"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one pizza")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrPizzaNotFound   = errors.New("pizza does not exist")
)

const orderCreatedMessage = "Successful order!"

// OrderService handles order business logic: validation, server-side
// price resolution, persistence and summary assembly.
type OrderService struct {
	catalog repository.CatalogRepository
	store   repository.OrderStore
	ids     idgen.Generator
	metrics *metrics.OrderMetrics
	log     *slog.Logger
}

// NewOrderService creates a new order service. metrics may be nil.
func NewOrderService(
	catalog repository.CatalogRepository,
	store repository.OrderStore,
	ids idgen.Generator,
	mtr *metrics.OrderMetrics,
	log *slog.Logger,
) *OrderService {
	return &OrderService{
		catalog: catalog,
		store:   store,
		ids:     ids,
		metrics: mtr,
		log:     log,
	}
}

// CreateOrder validates the cart, resolves each price from the catalog,
// persists the order and its line items, and returns the priced summary.
//
// Prices are never taken from the request. Repeated pizza names are kept
// as separate line items. The order row is written before any line item;
// the writes are not wrapped in a transaction, so a failure mid-way can
// leave a partially written order behind.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.CreateOrderResponse, error) {
	if len(req.Pizzas) == 0 {
		s.metrics.OrderFailed("empty_order")
		return nil, ErrEmptyOrder
	}

	for _, item := range req.Pizzas {
		if item.Quantity <= 0 {
			s.metrics.OrderFailed("invalid_quantity")
			return nil, ErrInvalidQuantity
		}
	}

	priced := make([]models.PricedPizza, 0, len(req.Pizzas))
	for _, item := range req.Pizzas {
		price, err := s.catalog.GetPrice(ctx, item.Name)
		if err != nil {
			if errors.Is(err, repository.ErrPizzaNotFound) {
				s.metrics.OrderFailed("unknown_pizza")
				return nil, ErrPizzaNotFound
			}
			s.metrics.OrderFailed("catalog_error")
			return nil, fmt.Errorf("resolve price for %q: %w", item.Name, err)
		}

		priced = append(priced, models.PricedPizza{
			Name:     item.Name,
			Price:    price,
			Quantity: item.Quantity,
		})
	}

	orderID := s.ids.NewID()
	if err := s.store.CreateOrder(ctx, orderID); err != nil {
		s.metrics.OrderFailed("store_error")
		return nil, fmt.Errorf("create order %s: %w", orderID, err)
	}

	for _, p := range priced {
		item := models.OrderLineItem{
			ID:        s.ids.NewID(),
			PizzaName: p.Name,
			Quantity:  p.Quantity,
			OrderID:   orderID,
		}
		if err := s.store.InsertLineItem(ctx, item); err != nil {
			s.metrics.OrderFailed("store_error")
			return nil, fmt.Errorf("insert line item for order %s: %w", orderID, err)
		}
	}

	var total float64
	for _, p := range priced {
		total += p.Price * float64(p.Quantity)
	}

	s.metrics.OrderCreated(total, len(priced))
	s.log.Info("order created",
		"order_id", orderID,
		"items", len(priced),
		"total", total,
	)

	return &models.CreateOrderResponse{
		Message: orderCreatedMessage,
		Order: models.OrderSummary{
			ID:     orderID,
			Pizzas: priced,
			Total:  total,
		},
	}, nil
}

// GetOrders returns every persisted order as a priced summary, in store
// iteration order.
//
// Line items carry no price, so each one is re-resolved against the
// current catalog: totals drift when menu prices change. A pizza that
// has since left the menu prices its line at zero instead of failing
// the whole listing; the case is logged.
func (s *OrderService) GetOrders(ctx context.Context) (*models.OrdersResponse, error) {
	records, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]models.OrderSummary, 0, len(records))
	for _, rec := range records {
		items, err := s.store.ListLineItems(ctx, rec.ID)
		if err != nil {
			return nil, fmt.Errorf("list line items for order %s: %w", rec.ID, err)
		}

		pizzas := make([]models.PricedPizza, 0, len(items))
		var total float64

		for _, item := range items {
			price, err := s.catalog.GetPrice(ctx, item.PizzaName)
			if err != nil {
				if errors.Is(err, repository.ErrPizzaNotFound) {
					s.log.Warn("pizza missing from catalog, pricing line item at zero",
						"order_id", rec.ID,
						"pizza", item.PizzaName,
					)
					price = 0
				} else {
					return nil, fmt.Errorf("resolve price for %q: %w", item.PizzaName, err)
				}
			}

			pizzas = append(pizzas, models.PricedPizza{
				Name:     item.PizzaName,
				Price:    price,
				Quantity: item.Quantity,
			})
			total += price * float64(item.Quantity)
		}

		orders = append(orders, models.OrderSummary{
			ID:     rec.ID,
			Pizzas: pizzas,
			Total:  total,
		})
	}

	return &models.OrdersResponse{Orders: orders}, nil
}
