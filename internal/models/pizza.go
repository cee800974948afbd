package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Summary returns the pizza without any of its associations
func (p Pizza) Summary() PizzaSummary {
	return PizzaSummary{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}
