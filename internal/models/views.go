package models

// Response shapes. Each one expands at most one hop past its root entity and
// never carries the back-reference of that hop.

// RestaurantSummary is a restaurant without restaurant_pizzas
type RestaurantSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is a pizza without restaurant_pizzas
type PizzaSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantDetail is a restaurant together with the pizzas it offers
type RestaurantDetail struct {
	ID               int                           `json:"id"`
	Name             string                        `json:"name"`
	Address          string                        `json:"address"`
	RestaurantPizzas []RestaurantPizzaOfRestaurant `json:"restaurant_pizzas"`
}

// RestaurantPizzaOfRestaurant is an association nested under its restaurant,
// so it carries the pizza but not the restaurant.
type RestaurantPizzaOfRestaurant struct {
	ID           int          `json:"id"`
	Price        int          `json:"price"`
	PizzaID      int          `json:"pizza_id"`
	RestaurantID int          `json:"restaurant_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantPizzaDetail is an association with both of its sides
type RestaurantPizzaDetail struct {
	ID           int               `json:"id"`
	Price        int               `json:"price"`
	PizzaID      int               `json:"pizza_id"`
	RestaurantID int               `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// NewRestaurantDetail assembles the detail view. pizzas is keyed by pizza ID;
// associations whose pizza is absent get a summary carrying only the ID.
func NewRestaurantDetail(r Restaurant, rps []RestaurantPizza, pizzas map[int]Pizza) RestaurantDetail {
	detail := RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: make([]RestaurantPizzaOfRestaurant, 0, len(rps)),
	}
	for _, rp := range rps {
		pizza, ok := pizzas[rp.PizzaID]
		if !ok {
			pizza = Pizza{ID: rp.PizzaID}
		}
		detail.RestaurantPizzas = append(detail.RestaurantPizzas, RestaurantPizzaOfRestaurant{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Pizza:        pizza.Summary(),
		})
	}
	return detail
}

// NewRestaurantPizzaDetail assembles the view returned after creating an association
func NewRestaurantPizzaDetail(rp RestaurantPizza, r Restaurant, p Pizza) RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        p.Summary(),
		Restaurant:   r.Summary(),
	}
}

// RestaurantSummaries maps restaurants to their list view
func RestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.Summary())
	}
	return out
}

// PizzaSummaries maps pizzas to their list view
func PizzaSummaries(pizzas []Pizza) []PizzaSummary {
	out := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, p.Summary())
	}
	return out
}
