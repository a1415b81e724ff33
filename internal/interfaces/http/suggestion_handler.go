package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/session"
)

// SuggestionHandler sirve las sugerencias de reposición y el banner.
type SuggestionHandler struct {
	state *session.State
}

// NewSuggestionHandler construye el handler.
func NewSuggestionHandler(state *session.State) *SuggestionHandler {
	return &SuggestionHandler{state: state}
}

// List godoc
// @Summary      Sugerencias de reposición vigentes
// @Tags         suggestions
// @Produce      json
// @Success      200  {array}  view.SuggestionRow
// @Router       /ui/suggestions [get]
func (h *SuggestionHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"suggestions": h.state.Suggestions()})
}

// Accept godoc
// @Summary      Aceptar sugerencia: añade a la lista y descarta la sesión
// @Tags         suggestions
// @Accept       json
// @Produce      json
// @Param        name  path  string                       true  "producto"
// @Param        body  body  dto.AcceptSuggestionRequest  true  "quantity ajustada"
// @Success      200  {array}   view.SuggestionRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /ui/suggestions/{name}/accept [post]
func (h *SuggestionHandler) Accept(c *fiber.Ctx) error {
	name, err := paramName(c)
	if err != nil {
		return badRequest(c, "nombre inválido")
	}
	// El cuerpo es opcional; sin cantidad la lista aplica su mínimo
	var in dto.AcceptSuggestionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "cuerpo inválido")
		}
	}
	if err := h.state.AcceptSuggestion(name, in.Quantity); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"suggestions": h.state.Suggestions()})
}

// Reject godoc
// @Summary      Rechazar sugerencia para el resto de la sesión
// @Tags         suggestions
// @Produce      json
// @Param        name  path  string  true  "producto"
// @Success      200  {array}   view.SuggestionRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /ui/suggestions/{name}/reject [post]
func (h *SuggestionHandler) Reject(c *fiber.Ctx) error {
	name, err := paramName(c)
	if err != nil {
		return badRequest(c, "nombre inválido")
	}
	if err := h.state.RejectSuggestion(name); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"suggestions": h.state.Suggestions()})
}

// Banner godoc
// @Summary      Estado del banner de stock bajo
// @Tags         suggestions
// @Produce      json
// @Success      200  {object}  session.BannerView
// @Router       /ui/banner [get]
func (h *SuggestionHandler) Banner(c *fiber.Ctx) error {
	return c.JSON(h.state.Banner())
}

// CloseBanner godoc
// @Summary      Cerrar el banner (silenciado hasta que acabe la racha baja)
// @Tags         suggestions
// @Produce      json
// @Success      200  {object}  session.BannerView
// @Router       /ui/banner/close [post]
func (h *SuggestionHandler) CloseBanner(c *fiber.Ctx) error {
	h.state.CloseBanner()
	return c.JSON(h.state.Banner())
}

// GoShopping godoc
// @Summary      CTA del banner: ambas vistas de la pantalla de compra
// @Description  Navegar no oculta el banner; solo el cierre explícito o una
//
//	re-evaluación sin stock bajo lo hacen.
//
// @Tags         suggestions
// @Produce      json
// @Success      200  {object}  session.ShoppingScreen
// @Router       /ui/banner/go-shopping [post]
func (h *SuggestionHandler) GoShopping(c *fiber.Ctx) error {
	return c.JSON(h.state.GoShopping())
}
