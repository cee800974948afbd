package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a migrated in-memory database. A single connection keeps
// every query, transactions included, on the same in-memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	restaurant models.Restaurant
	other      models.Restaurant
	emma       models.Pizza
	geri       models.Pizza
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		restaurant: models.Restaurant{Name: "Dominion Pizza", Address: "Baldwin Ave"},
		other:      models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"},
		emma:       models.Pizza{Name: "Emma", Ingredients: "Dough,Tomato Sauce"},
		geri:       models.Pizza{Name: "Geri", Ingredients: "Dough,Tomato Sauce,Cheese,Pepperoni"},
	}
	require.NoError(t, db.Create(&f.restaurant).Error)
	require.NoError(t, db.Create(&f.other).Error)
	require.NoError(t, db.Create(&f.emma).Error)
	require.NoError(t, db.Create(&f.geri).Error)
	return f
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(&models.RestaurantPizza{})
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

var ctx = context.Background()
