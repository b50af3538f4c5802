package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ambulnz/pizza-ordering/internal/repository"
	"github.com/ambulnz/pizza-ordering/internal/service"
)

// PizzaHandler handles menu-related HTTP requests
type PizzaHandler struct {
	service *service.PizzaService
	logger  *slog.Logger
}

// NewPizzaHandler creates a new pizza handler
func NewPizzaHandler(service *service.PizzaService, logger *slog.Logger) *PizzaHandler {
	return &PizzaHandler{
		service: service,
		logger:  logger,
	}
}

// ListPizzas handles GET /api/pizza
func (h *PizzaHandler) ListPizzas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pizzas, err := h.service.ListPizzas(ctx)
	if err != nil {
		h.logger.Error("failed to list pizzas", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, pizzas, h.logger)
}

// GetPizza handles GET /api/pizza/{pizzaName}
// Returns a single pizza with its current price:
// - 200: successful operation
// - 400: name missing
// - 404: pizza not found
func (h *PizzaHandler) GetPizza(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "pizzaName")

	if name == "" {
		h.logger.Warn("pizza name is required")
		WriteError(w, http.StatusBadRequest, "Pizza name is required", h.logger)
		return
	}

	pizza, err := h.service.GetPizza(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrPizzaNotFound) {
			h.logger.Info("pizza not found", "pizza", name)
			WriteError(w, http.StatusNotFound, "Pizza not found", h.logger)
			return
		}

		h.logger.Error("failed to get pizza", "pizza", name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, pizza, h.logger)
}
