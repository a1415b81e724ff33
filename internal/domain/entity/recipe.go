package entity

// Ingredient es un ingrediente de receta; Name referencia a Product.Name
// cuando el producto existe en el inventario.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
}

// Recipe es una receta del backend (/api/recipes).
type Recipe struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	Time        string       `json:"time,omitempty"`
	Portions    int          `json:"portions,omitempty"`
	Steps       []string     `json:"steps,omitempty"`
}
