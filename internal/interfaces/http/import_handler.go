package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/session"
)

// ImportHandler sirve la importación de tickets (OCR) y las notificaciones.
type ImportHandler struct {
	state *session.State
}

// NewImportHandler construye el handler.
func NewImportHandler(state *session.State) *ImportHandler {
	return &ImportHandler{state: state}
}

// SubmitReceipt godoc
// @Summary      Casar líneas de ticket contra el dominio
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiptSubmitRequest  true  "líneas reconocidas"
// @Success      200  {array}   entity.ReceiptMatch
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /ui/import/receipt [post]
func (h *ImportHandler) SubmitReceipt(c *fiber.Ctx) error {
	var in dto.ReceiptSubmitRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	matches, err := h.state.SubmitReceipt(c.Context(), in.Lines)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"matches": matches})
}

// ConfirmImport godoc
// @Summary      Importar la selección confirmada a la lista de la compra
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiptConfirmRequest  true  "candidatos elegidos"
// @Success      200  {array}   view.ShoppingRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /ui/import/confirm [post]
func (h *ImportHandler) ConfirmImport(c *fiber.Ctx) error {
	var in dto.ReceiptConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	added, err := h.state.ConfirmImport(in.Selections)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"added": added,
		"items": h.state.ShoppingList(),
	})
}

// Toasts godoc
// @Summary      Entregar y vaciar las notificaciones pendientes
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  notification.Toast
// @Router       /ui/notifications [get]
func (h *ImportHandler) Toasts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"toasts": h.state.Toasts()})
}
