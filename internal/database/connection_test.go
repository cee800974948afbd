package database

import (
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDatabase(DatabaseConfig{
		Driver:     "sqlite",
		Path:       filepath.Join(t.TempDir(), "test.db"),
		MaxRetries: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestDatabaseConfigDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite uses the path",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "app.db"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "empty driver defaults to sqlite",
			cfg:      DatabaseConfig{Path: "other.db"},
			expected: "other.db?_foreign_keys=on",
		},
		{
			name:     "sqlite keeps existing parameters",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "file:app.db?cache=shared"},
			expected: "file:app.db?cache=shared&_foreign_keys=on",
		},
		{
			name: "postgres builds a keyword dsn",
			cfg: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432", User: "u",
				Password: "p", Name: "pizzas", SSLMode: "disable",
			},
			expected: "host=db user=u password=p dbname=pizzas port=5432 sslmode=disable",
		},
		{
			name:     "postgres prefers the url",
			cfg:      DatabaseConfig{Driver: "postgresql", URL: "postgres://u:p@db/pizzas", Host: "ignored"},
			expected: "postgres://u:p@db/pizzas",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestDatabaseConfigStringMasksSecrets(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", URL: "postgres://u:hunter2@db/pizzas", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestInitDatabaseSQLite(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Ping(db))
	require.NoError(t, Migrate(db))

	for _, table := range []string{"restaurants", "pizzas", "restaurant_pizzas"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	seeded, err := SeedIfEmpty(db)
	require.NoError(t, err)
	assert.True(t, seeded)

	var restaurants, pizzas, rps int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&rps)
	assert.EqualValues(t, len(seedRestaurants), restaurants)
	assert.EqualValues(t, len(seedPizzas), pizzas)
	assert.EqualValues(t, 6, rps)

	var outOfRange int64
	db.Model(&models.RestaurantPizza{}).
		Where("price < ? OR price > ?", models.MinPrice, models.MaxPrice).
		Count(&outOfRange)
	assert.Zero(t, outOfRange)

	seeded, err = SeedIfEmpty(db)
	require.NoError(t, err)
	assert.False(t, seeded, "second run must not seed again")

	db.Model(&models.Restaurant{}).Count(&restaurants)
	assert.EqualValues(t, len(seedRestaurants), restaurants)
}
