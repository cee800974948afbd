package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService creates priced associations between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and stores a new association. Validation
	// failures, including references to missing rows, are *models.ValidationError.
	CreateRestaurantPizza(ctx context.Context, price, restaurantID, pizzaID int) (models.RestaurantPizzaDetail, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, price, restaurantID, pizzaID int) (models.RestaurantPizzaDetail, error) {
	rp, err := models.NewRestaurantPizza(price, restaurantID, pizzaID)
	if err != nil {
		return models.RestaurantPizzaDetail{}, err
	}

	var detail models.RestaurantPizzaDetail
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant, err := findRestaurant(tx, rp.RestaurantID)
		if errors.Is(err, models.ErrRestaurantNotFound) {
			return models.NewValidationError("restaurant_id", fmt.Sprintf("restaurant %d does not exist", rp.RestaurantID))
		}
		if err != nil {
			return err
		}

		pizza, err := findPizza(tx, rp.PizzaID)
		if errors.Is(err, models.ErrPizzaNotFound) {
			return models.NewValidationError("pizza_id", fmt.Sprintf("pizza %d does not exist", rp.PizzaID))
		}
		if err != nil {
			return err
		}

		// a concurrent delete can still remove either row before the insert
		err = tx.Create(&rp).Error
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.NewValidationError("restaurant_id", "referenced restaurant or pizza no longer exists")
		}
		if err != nil {
			return fmt.Errorf("create restaurant pizza: %w", err)
		}
		detail = models.NewRestaurantPizzaDetail(rp, restaurant, pizza)
		return nil
	})
	if err != nil {
		return models.RestaurantPizzaDetail{}, err
	}
	return detail, nil
}
