package service

import (
	"context"

	"github.com/ambulnz/pizza-ordering/internal/models"
	"github.com/ambulnz/pizza-ordering/internal/repository"
)

// PizzaService handles business logic for the menu
type PizzaService struct {
	catalog repository.CatalogRepository
}

// NewPizzaService creates a new pizza service
func NewPizzaService(catalog repository.CatalogRepository) *PizzaService {
	return &PizzaService{
		catalog: catalog,
	}
}

// ListPizzas returns the full menu
func (s *PizzaService) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	return s.catalog.GetAll(ctx)
}

// GetPizza returns a pizza by name
func (s *PizzaService) GetPizza(ctx context.Context, name string) (*models.Pizza, error) {
	return s.catalog.GetByName(ctx, name)
}
