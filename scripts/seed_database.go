package main

import (
	"flag"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Seeds the configured database with sample restaurants, pizzas and prices.
//
//	go run scripts/seed_database.go           # seed only when empty
//	go run scripts/seed_database.go -reset    # wipe all rows, then seed
func main() {
	reset := flag.Bool("reset", false, "Delete every restaurant, pizza and restaurant pizza before seeding")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     conf.DBDriver,
		URL:        conf.DatabaseURL,
		Host:       conf.DBHost,
		Port:       conf.DBPort,
		User:       conf.DBUser,
		Password:   conf.DBPassword,
		Name:       conf.DBName,
		SSLMode:    conf.DBSSLMode,
		Path:       conf.DBPath,
		MaxRetries: 1,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if *reset {
		log.Info("Deleting existing rows")
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := db.Where("1 = 1").Delete(model).Error; err != nil {
				log.Fatalf("Failed to delete rows: %v", err)
			}
		}
	}

	seeded, err := database.SeedIfEmpty(db)
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	if !seeded {
		log.Info("Database already holds data, nothing to do (use -reset to reseed)")
		return
	}
	log.Info("Seed complete")
}
