package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizzas table
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas ordered by id
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id int) (models.Pizza, error)
	// CreatePizza inserts a new pizza
	CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id int) (models.Pizza, error) {
	return findPizza(s.db.WithContext(ctx), id)
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	pizza.ID = 0
	if err := s.db.WithContext(ctx).Create(&pizza).Error; err != nil {
		return models.Pizza{}, fmt.Errorf("create pizza: %w", err)
	}
	return pizza, nil
}

func findPizza(db *gorm.DB, id int) (models.Pizza, error) {
	var pizza models.Pizza
	if err := db.First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, models.ErrPizzaNotFound
		}
		return models.Pizza{}, fmt.Errorf("find pizza %d: %w", id, err)
	}
	return pizza, nil
}
