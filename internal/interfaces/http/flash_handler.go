package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soporteti/inventario/internal/application/dto"
)

// FlashHandler entrega el mensaje flash pendiente del usuario autenticado.
type FlashHandler struct {
	flash FlashStore
}

// NewFlashHandler construye el handler.
func NewFlashHandler(flash FlashStore) *FlashHandler {
	return &FlashHandler{flash: flash}
}

// Take godoc
// @Summary      Consumir el mensaje flash pendiente
// @Description  Devuelve y borra el aviso pendiente del usuario. 204 si no hay.
// @Tags         flash
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FlashResponse
// @Success      204  "sin mensaje pendiente"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/flash [get]
func (h *FlashHandler) Take(c *fiber.Ctx) error {
	kind, text, err := h.flash.Take(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if kind == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(dto.FlashResponse{Kind: kind, Text: text})
}
