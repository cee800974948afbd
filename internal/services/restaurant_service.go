package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with restaurants and the
// associations they own
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants ordered by id
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error)
	// GetRestaurantDetail retrieves a restaurant with its offered pizzas
	GetRestaurantDetail(ctx context.Context, id int) (models.RestaurantDetail, error)
	// CreateRestaurant inserts a new restaurant
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and all of its restaurant pizzas
	DeleteRestaurant(ctx context.Context, id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error) {
	return findRestaurant(s.db.WithContext(ctx), id)
}

func (s *restaurantService) GetRestaurantDetail(ctx context.Context, id int) (models.RestaurantDetail, error) {
	db := s.db.WithContext(ctx)

	restaurant, err := findRestaurant(db, id)
	if err != nil {
		return models.RestaurantDetail{}, err
	}

	var rps []models.RestaurantPizza
	if err := db.Where("restaurant_id = ?", id).Order("id").Find(&rps).Error; err != nil {
		return models.RestaurantDetail{}, fmt.Errorf("list restaurant pizzas of %d: %w", id, err)
	}

	pizzas := make(map[int]models.Pizza, len(rps))
	if len(rps) > 0 {
		ids := make([]int, 0, len(rps))
		for _, rp := range rps {
			ids = append(ids, rp.PizzaID)
		}
		var found []models.Pizza
		if err := db.Where("id IN ?", ids).Find(&found).Error; err != nil {
			return models.RestaurantDetail{}, fmt.Errorf("resolve pizzas of restaurant %d: %w", id, err)
		}
		for _, p := range found {
			pizzas[p.ID] = p
		}
	}

	return models.NewRestaurantDetail(restaurant, rps, pizzas), nil
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	restaurant.ID = 0
	if err := s.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, fmt.Errorf("create restaurant: %w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findRestaurant(tx, id); err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("delete restaurant pizzas of %d: %w", id, err)
		}
		if err := tx.Delete(&models.Restaurant{}, id).Error; err != nil {
			return fmt.Errorf("delete restaurant %d: %w", id, err)
		}
		return nil
	})
}

func findRestaurant(db *gorm.DB, id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, models.ErrRestaurantNotFound
		}
		return models.Restaurant{}, fmt.Errorf("find restaurant %d: %w", id, err)
	}
	return restaurant, nil
}
