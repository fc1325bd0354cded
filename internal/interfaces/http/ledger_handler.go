package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/soporteti/inventario/internal/application/dto"
	"github.com/soporteti/inventario/internal/application/ledger"
	"github.com/soporteti/inventario/internal/domain"
)

// FlashStore buzón de mensajes de un solo uso por usuario. kind vacío en
// Take significa que no hay mensaje pendiente.
type FlashStore interface {
	Set(ctx context.Context, userID, kind, text string) error
	Take(ctx context.Context, userID string) (kind, text string, err error)
}

// LedgerHandler maneja entradas, salidas y el libro de movimientos (protegido).
type LedgerHandler struct {
	uc    *ledger.UseCase
	flash FlashStore
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase, flash FlashStore) *LedgerHandler {
	return &LedgerHandler{uc: uc, flash: flash}
}

// setFlash deja un aviso pendiente; un fallo del buzón nunca tumba la operación.
func (h *LedgerHandler) setFlash(c *fiber.Ctx, kind, text string) {
	if h.flash == nil {
		return
	}
	_ = h.flash.Set(c.Context(), GetUserID(c), kind, text)
}

// RegisterEntrada godoc
// @Summary      Registrar entrada de stock
// @Tags         insumos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.RegisterEntradaRequest  true  "cantidad, comentario"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/insumos/{id}/entradas [post]
func (h *LedgerHandler) RegisterEntrada(c *fiber.Ctx) error {
	insumoID := c.Params("id")
	var in dto.RegisterEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	nuevoStock, err := h.uc.RecordEntry(c.Context(), insumoID, in.Cantidad, in.Comentario, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser mayor que cero"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		}
		h.setFlash(c, "error", "No se pudo registrar la entrada.")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.setFlash(c, "success", "Entrada registrada correctamente.")
	return c.Status(fiber.StatusCreated).JSON(dto.StockResponse{InsumoID: insumoID, NuevoStock: nuevoStock})
}

// RegisterSalida godoc
// @Summary      Registrar salida de stock hacia un área
// @Tags         insumos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.RegisterSalidaRequest  true  "cantidad, comentario, area_destino_id"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/insumos/{id}/salidas [post]
func (h *LedgerHandler) RegisterSalida(c *fiber.Ctx) error {
	insumoID := c.Params("id")
	var in dto.RegisterSalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AreaDestinoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "area_destino_id es requerido"})
	}
	nuevoStock, err := h.uc.RecordExit(c.Context(), insumoID, in.Cantidad, in.Comentario, GetUserID(c), in.AreaDestinoID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser mayor que cero"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		}
		if errors.Is(err, domain.ErrAreaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "AREA_NOT_FOUND", Message: "el área de destino no existe"})
		}
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			msg := fmt.Sprintf("Stock insuficiente. Disponible: %d.", stockErr.Stock)
			h.setFlash(c, "error", msg)
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: msg})
		}
		h.setFlash(c, "error", "No se pudo registrar la salida.")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.setFlash(c, "success", "Salida registrada correctamente.")
	return c.Status(fiber.StatusCreated).JSON(dto.StockResponse{InsumoID: insumoID, NuevoStock: nuevoStock})
}

// ListMovimientos godoc
// @Summary      Libro de movimientos de un insumo
// @Description  Entradas y salidas del insumo, más reciente primero.
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del insumo"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/insumos/{id}/movimientos [get]
func (h *LedgerHandler) ListMovimientos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	movs, err := h.uc.ListMovimientos(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimientoResponse{
			ID:              m.ID,
			InsumoID:        m.InsumoID,
			Tipo:            string(m.Tipo),
			Cantidad:        m.Cantidad,
			FechaMovimiento: m.FechaMovimiento,
			Comentario:      m.Comentario,
			UsuarioID:       m.UsuarioID,
			AreaDestinoID:   m.AreaDestinoID,
		})
	}
	return c.JSON(out)
}
