package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ambulnz/pizza-ordering/internal/models"
	"github.com/ambulnz/pizza-ordering/internal/repository"
	"github.com/ambulnz/pizza-ordering/internal/service"
	"github.com/ambulnz/pizza-ordering/pkg/logger"
)

func newPizzaRouter() *chi.Mux {
	catalog := repository.NewInMemoryCatalog()
	log := logger.New("error")
	handler := NewPizzaHandler(service.NewPizzaService(catalog), log)

	r := chi.NewRouter()
	r.Get("/api/pizza", handler.ListPizzas)
	r.Get("/api/pizza/{pizzaName}", handler.GetPizza)
	return r
}

func TestPizzaHandler_ListPizzas(t *testing.T) {
	r := newPizzaRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/pizza", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var pizzas []models.Pizza
	if err := json.NewDecoder(w.Body).Decode(&pizzas); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(pizzas) == 0 {
		t.Error("expected a non-empty menu")
	}
}

func TestPizzaHandler_GetPizza(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
		wantPizza      string
	}{
		{
			name:           "existing pizza",
			path:           "/api/pizza/Margherita",
			expectedStatus: http.StatusOK,
			wantPizza:      "Margherita",
		},
		{
			name:           "unknown pizza",
			path:           "/api/pizza/Anchovy",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPizzaRouter()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.wantPizza != "" {
				var pizza models.Pizza
				if err := json.NewDecoder(w.Body).Decode(&pizza); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if pizza.Name != tt.wantPizza {
					t.Errorf("name = %q, want %q", pizza.Name, tt.wantPizza)
				}
				if pizza.Price <= 0 {
					t.Errorf("price = %v, want positive", pizza.Price)
				}
			}
		})
	}
}
