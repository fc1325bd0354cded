package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrAreaNotFound      = errors.New("área de destino no encontrada")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un número entero positivo")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrNameAlreadyExists = errors.New("el nombre ya está registrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que una salida excede el stock disponible.
// Lleva el stock autoritativo leído bajo el bloqueo de fila para que el
// caller pueda informarlo ("Stock actual: N").
type InsufficientStockError struct {
	Stock int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente (stock actual: %d)", e.Stock)
}

// Is permite errors.Is(err, ErrInsufficientStock) sin perder el valor de stock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
