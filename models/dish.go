package models

// Dish is a menu entry. The id is assigned at creation and never changes;
// updates overwrite every other field wholesale.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}
