package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soporteti/inventario/internal/application/dto"
	"github.com/soporteti/inventario/internal/application/usecase"
	"github.com/soporteti/inventario/internal/domain"
)

// AreaHandler maneja las áreas consumidoras (solo admin).
type AreaHandler struct {
	uc *usecase.AreaUseCase
}

// NewAreaHandler construye el handler.
func NewAreaHandler(uc *usecase.AreaUseCase) *AreaHandler {
	return &AreaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear área
// @Tags         areas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AreaRequest  true  "nombre"
// @Success      201   {object}  dto.AreaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/areas [post]
func (h *AreaHandler) Create(c *fiber.Ctx) error {
	var in dto.AreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapAreaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Renombrar área
// @Tags         areas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del área"
// @Param        body  body  dto.AreaRequest  true  "nombre"
// @Success      200   {object}  dto.AreaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [put]
func (h *AreaHandler) Update(c *fiber.Ctx) error {
	var in dto.AreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapAreaError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar área
// @Description  Falla con 409 si el área aparece en salidas registradas.
// @Tags         areas
// @Security     Bearer
// @Param        id  path  string  true  "ID del área"
// @Success      204  "eliminada"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [delete]
func (h *AreaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapAreaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar áreas
// @Tags         areas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.AreaResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/areas [get]
func (h *AreaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func mapAreaError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "área no encontrada"})
	}
	if errors.Is(err, domain.ErrNameAlreadyExists) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NAME_EXISTS", Message: "ya existe un área con ese nombre"})
	}
	if errors.Is(err, domain.ErrConflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el área aparece en salidas registradas"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
