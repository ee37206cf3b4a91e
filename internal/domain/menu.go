package domain

// Category classifies a menu item and drives queue assignment.
type Category string

const (
	CategoryTraditional Category = "traditional"
	CategorySpecial     Category = "special"
)

// MenuItem is a catalog entry. Prices are integer minor currency units
// (COP has no cents, so 1500 means $1.500).
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
}
