package models

// Pizza represents a menu entry in the catalog.
// The catalog is the only authority on prices; clients never send them.
type Pizza struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
}
