package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/favorites"
	"github.com/jhoicas/despensa-api/internal/application/session"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// RecipeHandler sirve las recetas, los favoritos y el volcado a la lista.
type RecipeHandler struct {
	state *session.State
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(state *session.State) *RecipeHandler {
	return &RecipeHandler{state: state}
}

// List godoc
// @Summary      Recetas con su marca de favorito
// @Tags         recipes
// @Produce      json
// @Success      200  {array}  view.RecipeRow
// @Router       /ui/recipes [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"recipes": h.state.Recipes()})
}

// Reload godoc
// @Summary      Recargar recetas del backend
// @Tags         recipes
// @Produce      json
// @Success      200  {array}   view.RecipeRow
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /ui/recipes/reload [post]
func (h *RecipeHandler) Reload(c *fiber.Ctx) error {
	if err := h.state.ReloadRecipes(c.Context()); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"recipes": h.state.Recipes()})
}

// ToggleFavorite godoc
// @Summary      Alternar favorito (optimista con rollback)
// @Description  Aplica el cambio local, confirma contra el backend y, si la
//
//	confirmación falla, revierte y responde el estado restaurado.
//
// @Tags         recipes
// @Produce      json
// @Param        name  path  string  true  "receta"
// @Success      200  {object}  favorites.Result
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  favorites.Result
// @Router       /ui/recipes/{name}/favorite [post]
func (h *RecipeHandler) ToggleFavorite(c *fiber.Ctx) error {
	name, err := paramName(c)
	if err != nil {
		return badRequest(c, "nombre inválido")
	}
	res, err := h.state.ToggleFavorite(c.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return mapDomainError(c, err)
		}
		// Rollback aplicado: se responde el estado restaurado junto al error
		if res.Status == favorites.StatusRolledBack {
			return c.Status(fiber.StatusBadGateway).JSON(res)
		}
		return mapDomainError(c, err)
	}
	return c.JSON(res)
}

// AddToList godoc
// @Summary      Volcar los ingredientes de la receta a la lista de la compra
// @Tags         recipes
// @Produce      json
// @Param        name  path  string  true  "receta"
// @Success      200  {array}   view.ShoppingRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ui/recipes/{name}/add-to-list [post]
func (h *RecipeHandler) AddToList(c *fiber.Ctx) error {
	name, err := paramName(c)
	if err != nil {
		return badRequest(c, "nombre inválido")
	}
	added, err := h.state.AddRecipeToList(name)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"added": added,
		"items": h.state.ShoppingList(),
	})
}
