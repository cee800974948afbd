package models

const (
	// MinPrice is the lowest price a restaurant may charge for a pizza
	MinPrice = 1
	// MaxPrice is the highest price a restaurant may charge for a pizza
	MaxPrice = 30
)

// RestaurantPizza is the priced association between a restaurant and a pizza.
// Both sides are held as foreign keys. Restaurant and Pizza only declare the
// FOREIGN KEY constraints for migration and are never loaded.
type RestaurantPizza struct {
	ID           int `gorm:"primaryKey" json:"id"`
	Price        int `gorm:"not null" json:"price"`
	RestaurantID int `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      int `gorm:"not null;index" json:"pizza_id"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	Pizza      *Pizza      `gorm:"foreignKey:PizzaID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidatePrice returns the price unchanged when it lies within [MinPrice, MaxPrice]
func ValidatePrice(price int) (int, error) {
	if price < MinPrice || price > MaxPrice {
		return 0, NewValidationError("price", "Price must be between 1 and 30.")
	}
	return price, nil
}

// NewRestaurantPizza builds a validated association. It does not check that
// the referenced restaurant and pizza exist.
func NewRestaurantPizza(price, restaurantID, pizzaID int) (RestaurantPizza, error) {
	validPrice, err := ValidatePrice(price)
	if err != nil {
		return RestaurantPizza{}, err
	}
	if restaurantID <= 0 {
		return RestaurantPizza{}, NewValidationError("restaurant_id", "restaurant_id must be a positive integer")
	}
	if pizzaID <= 0 {
		return RestaurantPizza{}, NewValidationError("pizza_id", "pizza_id must be a positive integer")
	}
	return RestaurantPizza{
		Price:        validPrice,
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
	}, nil
}
