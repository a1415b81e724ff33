package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/session"
	"github.com/jhoicas/despensa-api/internal/application/view"
)

// ProductHandler sirve la tabla de productos y las recargas desde el backend.
type ProductHandler struct {
	state *session.State
}

// NewProductHandler construye el handler.
func NewProductHandler(state *session.State) *ProductHandler {
	return &ProductHandler{state: state}
}

// Table godoc
// @Summary      Tabla de productos con filtros y orden
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "filtrar por categoría"
// @Param        storage   query  string  false  "filtrar por almacén"
// @Param        search    query  string  false  "búsqueda por nombre o alias"
// @Param        sort      query  string  false  "name (defecto) | stock"
// @Success      200  {array}  view.ProductRow
// @Router       /ui/products [get]
func (h *ProductHandler) Table(c *fiber.Ctx) error {
	// Los filtros de la query pasan a ser el estado de filtros de la sesión
	h.state.SetFilters(view.Filters{
		Category: c.Query("category"),
		Storage:  c.Query("storage"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	})
	return c.JSON(fiber.Map{"products": h.state.ProductTable()})
}

// Reload godoc
// @Summary      Recargar inventario del backend y re-evaluar el banner
// @Tags         products
// @Produce      json
// @Success      200  {object}  session.BannerView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /ui/products/reload [post]
func (h *ProductHandler) Reload(c *fiber.Ctx) error {
	if err := h.state.ReloadProducts(c.Context()); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"products": h.state.ProductTable(),
		"banner":   h.state.Banner(),
	})
}
