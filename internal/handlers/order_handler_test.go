package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ambulnz/pizza-ordering/internal/idgen"
	"github.com/ambulnz/pizza-ordering/internal/models"
	"github.com/ambulnz/pizza-ordering/internal/repository"
	"github.com/ambulnz/pizza-ordering/internal/service"
	"github.com/ambulnz/pizza-ordering/pkg/logger"
)

func newOrderHandler() (*OrderHandler, *service.OrderService) {
	catalog := repository.NewInMemoryCatalog()
	store := repository.NewInMemoryOrderStore()
	log := logger.New("error")
	orderService := service.NewOrderService(catalog, store, idgen.NewUUIDGenerator(), nil, log)
	return NewOrderHandler(orderService, log), orderService
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(*testing.T, *models.CreateOrderResponse)
	}{
		{
			name: "successful order",
			requestBody: models.OrderRequest{
				Pizzas: []models.OrderItemRequest{
					{Name: "Margherita", Quantity: 2},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.CreateOrderResponse) {
				if resp.Order.ID == "" {
					t.Error("order ID is empty")
				}
				if len(resp.Order.Pizzas) != 1 {
					t.Errorf("expected 1 pizza, got %d", len(resp.Order.Pizzas))
				}
				if resp.Order.Total != 20.00 {
					t.Errorf("expected total 20.00, got %f", resp.Order.Total)
				}
				if resp.Message != "Successful order!" {
					t.Errorf("unexpected message %q", resp.Message)
				}
			},
		},
		{
			name: "multiple pizzas order",
			requestBody: models.OrderRequest{
				Pizzas: []models.OrderItemRequest{
					{Name: "Margherita", Quantity: 1},
					{Name: "Pepperoni", Quantity: 2},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.CreateOrderResponse) {
				if len(resp.Order.Pizzas) != 2 {
					t.Errorf("expected 2 pizzas, got %d", len(resp.Order.Pizzas))
				}
			},
		},
		{
			name: "empty order",
			requestBody: models.OrderRequest{
				Pizzas: []models.OrderItemRequest{},
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name: "invalid quantity",
			requestBody: models.OrderRequest{
				Pizzas: []models.OrderItemRequest{
					{Name: "Margherita", Quantity: 0},
				},
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name: "unknown pizza",
			requestBody: models.OrderRequest{
				Pizzas: []models.OrderItemRequest{
					{Name: "Unknown", Quantity: 1},
				},
			},
			expectedStatus: http.StatusNotFound,
			checkResponse:  nil,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			checkResponse:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newOrderHandler()

			var body []byte
			var err error

			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.CreateOrder(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.checkResponse != nil {
				var resp models.CreateOrderResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	handler, orderService := newOrderHandler()

	// Listing with no orders returns an empty list.
	req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
	w := httptest.NewRecorder()
	handler.ListOrders(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var empty models.OrdersResponse
	if err := json.NewDecoder(w.Body).Decode(&empty); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(empty.Orders) != 0 {
		t.Errorf("expected 0 orders, got %d", len(empty.Orders))
	}

	// Create one order through the service and list again.
	created, err := orderService.CreateOrder(context.Background(), models.OrderRequest{
		Pizzas: []models.OrderItemRequest{
			{Name: "Pepperoni", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder() unexpected error = %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/order", nil)
	w = httptest.NewRecorder()
	handler.ListOrders(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp models.OrdersResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(resp.Orders))
	}
	if resp.Orders[0].ID != created.Order.ID {
		t.Errorf("order ID = %q, want %q", resp.Orders[0].ID, created.Order.ID)
	}
	if resp.Orders[0].Total != created.Order.Total {
		t.Errorf("total = %v, want %v", resp.Orders[0].Total, created.Order.Total)
	}
}
