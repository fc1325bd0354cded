package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soporteti/inventario/internal/application/dto"
	"github.com/soporteti/inventario/internal/application/usecase"
	"github.com/soporteti/inventario/internal/domain"
)

// EquipoHandler maneja los equipos informáticos y su historial (protegido).
type EquipoHandler struct {
	uc    *usecase.EquipoUseCase
	flash FlashStore
}

// NewEquipoHandler construye el handler.
func NewEquipoHandler(uc *usecase.EquipoUseCase, flash FlashStore) *EquipoHandler {
	return &EquipoHandler{uc: uc, flash: flash}
}

func (h *EquipoHandler) setFlash(c *fiber.Ctx, kind, text string) {
	if h.flash == nil {
		return
	}
	_ = h.flash.Set(c.Context(), GetUserID(c), kind, text)
}

// Create godoc
// @Summary      Registrar equipo
// @Tags         equipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EquipoRequest  true  "datos del equipo"
// @Success      201   {object}  dto.EquipoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/equipos [post]
func (h *EquipoHandler) Create(c *fiber.Ctx) error {
	var in dto.EquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in, GetUserID(c))
	if err != nil {
		return mapEquipoError(c, err)
	}
	h.setFlash(c, "success", "Equipo registrado correctamente.")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener equipo por ID
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.EquipoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [get]
func (h *EquipoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapEquipoError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar equipo
// @Description  Registra en el historial los campos que cambiaron.
// @Tags         equipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del equipo"
// @Param        body  body  dto.EquipoRequest  true  "datos del equipo"
// @Success      200   {object}  dto.EquipoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [put]
func (h *EquipoHandler) Update(c *fiber.Ctx) error {
	var in dto.EquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserID(c))
	if err != nil {
		return mapEquipoError(c, err)
	}
	h.setFlash(c, "success", "Equipo actualizado correctamente.")
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar equipo
// @Description  Deja una última entrada en el historial antes de borrar.
// @Tags         equipos
// @Security     Bearer
// @Param        id  path  string  true  "ID del equipo"
// @Success      204  "eliminado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [delete]
func (h *EquipoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return mapEquipoError(c, err)
	}
	h.setFlash(c, "success", "Equipo eliminado correctamente.")
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar equipos
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.EquipoListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/equipos [get]
func (h *EquipoHandler) List(c *fiber.Ctx) error {
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

// ListHistorial godoc
// @Summary      Historial de cambios de un equipo
// @Description  Eventos Agregado/Actualizado/Eliminado, más reciente primero.
//               El historial sobrevive al borrado del equipo.
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del equipo"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.HistorialEquipoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/equipos/{id}/historial [get]
func (h *EquipoHandler) ListHistorial(c *fiber.Ctx) error {
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

func mapEquipoError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "número de serie o patrimonio ya registrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
