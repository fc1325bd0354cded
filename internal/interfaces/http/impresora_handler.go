package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soporteti/inventario/internal/application/dto"
	"github.com/soporteti/inventario/internal/application/usecase"
	"github.com/soporteti/inventario/internal/domain"
)

// ImpresoraHandler maneja las impresoras y su bitácora (protegido).
type ImpresoraHandler struct {
	uc *usecase.ImpresoraUseCase
}

// NewImpresoraHandler construye el handler.
func NewImpresoraHandler(uc *usecase.ImpresoraUseCase) *ImpresoraHandler {
	return &ImpresoraHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar impresora
// @Tags         impresoras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImpresoraRequest  true  "datos de la impresora"
// @Success      201   {object}  dto.ImpresoraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/impresoras [post]
func (h *ImpresoraHandler) Create(c *fiber.Ctx) error {
	var in dto.ImpresoraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapImpresoraError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener impresora por ID
// @Tags         impresoras
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la impresora"
// @Success      200  {object}  dto.ImpresoraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/impresoras/{id} [get]
func (h *ImpresoraHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapImpresoraError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar impresora
// @Tags         impresoras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la impresora"
// @Param        body  body  dto.ImpresoraRequest  true  "datos de la impresora"
// @Success      200   {object}  dto.ImpresoraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/impresoras/{id} [put]
func (h *ImpresoraHandler) Update(c *fiber.Ctx) error {
	var in dto.ImpresoraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapImpresoraError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar impresora
// @Tags         impresoras
// @Security     Bearer
// @Param        id  path  string  true  "ID de la impresora"
// @Success      204  "eliminada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/impresoras/{id} [delete]
func (h *ImpresoraHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapImpresoraError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar impresoras
// @Tags         impresoras
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ImpresoraListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/impresoras [get]
func (h *ImpresoraHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddHistorial godoc
// @Summary      Anotar evento en la bitácora de la impresora
// @Description  El responsable se toma del usuario autenticado.
// @Tags         impresoras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la impresora"
// @Param        body  body  dto.AddHistorialImpresoraRequest  true  "tipo_evento, detalle"
// @Success      201   {object}  dto.HistorialImpresoraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/impresoras/{id}/historial [post]
func (h *ImpresoraHandler) AddHistorial(c *fiber.Ctx) error {
	var in dto.AddHistorialImpresoraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddHistorial(c.Params("id"), in, GetUsername(c))
	if err != nil {
		return mapImpresoraError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListHistorial godoc
// @Summary      Bitácora de una impresora
// @Tags         impresoras
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la impresora"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.HistorialImpresoraResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/impresoras/{id}/historial [get]
func (h *ImpresoraHandler) ListHistorial(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.ListHistorial(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func mapImpresoraError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "impresora no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
