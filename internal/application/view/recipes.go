package view

import (
	"github.com/jhoicas/despensa-api/internal/domain/catalog"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// RecipeRow es una fila del listado de recetas.
type RecipeRow struct {
	Name        string              `json:"name"`
	DisplayName string              `json:"displayName"`
	Time        string              `json:"time,omitempty"`
	Portions    int                 `json:"portions,omitempty"`
	Favorite    bool                `json:"favorite"`
	Ingredients []entity.Ingredient `json:"ingredients"`
}

// RecipeRows proyecta las recetas con su marca de favorito.
func RecipeRows(recipes []entity.Recipe, isFavorite func(string) bool, namer *catalog.Namer) []RecipeRow {
	rows := make([]RecipeRow, len(recipes))
	for i, r := range recipes {
		rows[i] = RecipeRow{
			Name:        r.Name,
			DisplayName: namer.DisplayName(r.Name),
			Time:        r.Time,
			Portions:    r.Portions,
			Favorite:    isFavorite(r.Name),
			Ingredients: r.Ingredients,
		}
	}
	return rows
}
