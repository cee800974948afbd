package models

// Restaurant represents a restaurant. Its offered pizzas live in the
// restaurant_pizzas table and are looked up by restaurant_id.
type Restaurant struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Summary returns the restaurant without its restaurant_pizzas
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}
