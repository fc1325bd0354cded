package repository

import "github.com/soporteti/inventario/internal/domain/entity"

// MovimientoRepository puerto de persistencia para el libro de movimientos.
// Append-only: no existen Update ni Delete.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	ListByInsumo(insumoID string, limit, offset int) ([]*entity.Movimiento, error)
}
