package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/session"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// ShoppingHandler sirve la lista de la compra: proyección y mutaciones.
type ShoppingHandler struct {
	state *session.State
}

// NewShoppingHandler construye el handler.
func NewShoppingHandler(state *session.State) *ShoppingHandler {
	return &ShoppingHandler{state: state}
}

// List godoc
// @Summary      Lista de la compra en orden de presentación
// @Tags         shopping
// @Produce      json
// @Success      200  {array}  view.ShoppingRow
// @Router       /ui/shopping-list [get]
func (h *ShoppingHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": h.state.ShoppingList()})
}

// Add godoc
// @Summary      Añadir producto a la lista (fusiona por nombre)
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "name, quantity"
// @Success      201  {array}   view.ShoppingRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /ui/shopping-list/items [post]
func (h *ShoppingHandler) Add(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.state.AddItem(in.Name, in.Quantity); err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"items": h.state.ShoppingList()})
}

// SetCart godoc
// @Summary      Marcar/desmarcar una entrada como cogida
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Param        index  path  int              true  "índice de la entrada"
// @Param        body   body  dto.CartRequest  true  "inCart"
// @Success      200  {array}   view.ShoppingRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ui/shopping-list/items/{index}/cart [patch]
func (h *ShoppingHandler) SetCart(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "índice inválido")
	}
	var in dto.CartRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.state.SetInCart(index, in.InCart); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": h.state.ShoppingList()})
}

// SetQuantity godoc
// @Summary      Fijar la cantidad de una entrada (mínimo 1)
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Param        index  path  int                  true  "índice de la entrada"
// @Param        body   body  dto.QuantityRequest  true  "quantity"
// @Success      200  {array}   view.ShoppingRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ui/shopping-list/items/{index}/quantity [patch]
func (h *ShoppingHandler) SetQuantity(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "índice inválido")
	}
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.state.SetQuantity(index, in.Quantity); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": h.state.ShoppingList()})
}

// RequestRemove godoc
// @Summary      Solicitar borrado de una entrada (primera fase)
// @Description  El borrado es en dos fases: esta llamada solo marca la fila;
//
//	hace falta confirmar con /remove/confirm para eliminarla.
//
// @Tags         shopping
// @Produce      json
// @Param        index  path  int  true  "índice de la entrada"
// @Success      200  {array}   view.ShoppingRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ui/shopping-list/items/{index} [delete]
func (h *ShoppingHandler) RequestRemove(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "índice inválido")
	}
	if err := h.state.RequestRemove(index); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": h.state.ShoppingList()})
}

// ConfirmRemove godoc
// @Summary      Confirmar el borrado pendiente (segunda fase)
// @Tags         shopping
// @Produce      json
// @Success      200  {array}   view.ShoppingRow
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /ui/shopping-list/remove/confirm [post]
func (h *ShoppingHandler) ConfirmRemove(c *fiber.Ctx) error {
	if err := h.state.ConfirmRemove(); err != nil {
		if errors.Is(err, domain.ErrNoPendingOp) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_PENDING", Message: "no hay borrado pendiente"})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": h.state.ShoppingList()})
}

// CancelRemove godoc
// @Summary      Cancelar el borrado pendiente
// @Tags         shopping
// @Produce      json
// @Success      200  {array}  view.ShoppingRow
// @Router       /ui/shopping-list/remove/cancel [post]
func (h *ShoppingHandler) CancelRemove(c *fiber.Ctx) error {
	h.state.CancelRemove()
	return c.JSON(fiber.Map{"items": h.state.ShoppingList()})
}

// ExportPDF godoc
// @Summary      Lista de la compra imprimible (A4)
// @Tags         shopping
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ui/shopping-list/pdf [get]
func (h *ShoppingHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.state.ExportPDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lista-compra.pdf"`)
	return c.Send(out)
}
