package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soporteti/inventario/internal/application/dto"
	"github.com/soporteti/inventario/internal/application/usecase"
	"github.com/soporteti/inventario/internal/domain"
)

// InsumoHandler maneja el catálogo de insumos (protegido).
type InsumoHandler struct {
	uc *usecase.InsumoUseCase
}

// NewInsumoHandler construye el handler.
func NewInsumoHandler(uc *usecase.InsumoUseCase) *InsumoHandler {
	return &InsumoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear insumo
// @Tags         insumos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInsumoRequest  true  "nombre, descripcion, stock, stock_minimo, categoria_id"
// @Success      201   {object}  dto.InsumoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/insumos [post]
func (h *InsumoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapInsumoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener insumo por ID
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del insumo"
// @Success      200  {object}  dto.InsumoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insumos/{id} [get]
func (h *InsumoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapInsumoError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar insumo
// @Description  Campos omitidos no cambian. Editar stock aquí es una corrección
//               directa que no genera movimiento.
// @Tags         insumos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.UpdateInsumoRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.InsumoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/insumos/{id} [put]
func (h *InsumoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapInsumoError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar insumo
// @Description  Falla con 409 si el insumo tiene movimientos registrados.
// @Tags         insumos
// @Security     Bearer
// @Param        id  path  string  true  "ID del insumo"
// @Success      204  "eliminado"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/insumos/{id} [delete]
func (h *InsumoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapInsumoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar insumos
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.InsumoListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/insumos [get]
func (h *InsumoHandler) List(c *fiber.Ctx) error {
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

// ListBajoMinimo godoc
// @Summary      Insumos en o bajo su stock mínimo
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InsumoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/insumos/bajo-stock [get]
func (h *InsumoHandler) ListBajoMinimo(c *fiber.Ctx) error {
	out, err := h.uc.ListBajoMinimo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func mapInsumoError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
	}
	if errors.Is(err, domain.ErrNameAlreadyExists) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NAME_EXISTS", Message: "ya existe un insumo con ese nombre"})
	}
	if errors.Is(err, domain.ErrConflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el insumo tiene movimientos registrados"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
