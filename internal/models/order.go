package models

// OrderItemRequest represents a single cart entry sent by a client.
// Untrusted input: it carries no price.
type OrderItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderRequest represents an incoming create-order request.
type OrderRequest struct {
	Pizzas []OrderItemRequest `json:"pizzas"`
}

// PricedPizza is a cart entry after server-side price resolution.
type PricedPizza struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderRecord is the persisted order row. Totals are never stored;
// they are recomputed from line items at read time.
type OrderRecord struct {
	ID string `json:"id"`
}

// OrderLineItem is one persisted pizza-quantity entry within an order.
// The price is deliberately absent: reads re-resolve it from the
// current catalog, so historical orders reprice when the menu changes.
type OrderLineItem struct {
	ID        string `json:"id"`
	PizzaName string `json:"pizza_name"`
	Quantity  int    `json:"quantity"`
	OrderID   string `json:"order_id"`
}

// OrderSummary is the priced, totaled view of an order returned to callers.
type OrderSummary struct {
	ID     string        `json:"id"`
	Pizzas []PricedPizza `json:"pizzas"`
	Total  float64       `json:"total"`
}

// CreateOrderResponse is the body returned after a successful order.
type CreateOrderResponse struct {
	Message string       `json:"message"`
	Order   OrderSummary `json:"order"`
}

// OrdersResponse wraps the order listing.
type OrdersResponse struct {
	Orders []OrderSummary `json:"orders"`
}
