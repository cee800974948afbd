package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var seedRestaurants = []models.Restaurant{
	{Name: "Karen's Pizza Shack", Address: "address1"},
	{Name: "Sanjay's Pizza", Address: "address2"},
	{Name: "Kiki's Pizza", Address: "address3"},
}

var seedPizzas = []models.Pizza{
	{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
	{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
}

// seedPrices[i][j] is the price restaurant i charges for pizza j, zero when not offered
var seedPrices = [][]int{
	{1, 4, 0},
	{0, 5, 12},
	{30, 0, 8},
}

// SeedIfEmpty seeds the database when it holds no restaurants and no pizzas.
// It reports whether seeding happened.
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, fmt.Errorf("count pizzas: %w", err)
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}
	log.Info("Database is empty, seeding initial data")
	return true, Seed(db)
}

// Seed inserts the sample restaurants, pizzas and their prices in one transaction
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		restaurants := append([]models.Restaurant(nil), seedRestaurants...)
		pizzas := append([]models.Pizza(nil), seedPizzas...)

		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("seed pizzas: %w", err)
		}

		for i, row := range seedPrices {
			for j, price := range row {
				if price == 0 {
					continue
				}
				rp, err := models.NewRestaurantPizza(price, restaurants[i].ID, pizzas[j].ID)
				if err != nil {
					return err
				}
				if err := tx.Create(&rp).Error; err != nil {
					return fmt.Errorf("seed restaurant pizza: %w", err)
				}
			}
		}

		log.WithFields(logrus.Fields{
			"restaurants": len(restaurants),
			"pizzas":      len(pizzas),
		}).Info("Database seeded successfully")
		return nil
	})
}
