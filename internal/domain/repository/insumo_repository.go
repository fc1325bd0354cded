package repository

import "github.com/soporteti/inventario/internal/domain/entity"

// InsumoRepository puerto de persistencia para insumos.
// GetForUpdate solo tiene sentido dentro de una transacción (repos atados a tx).
type InsumoRepository interface {
	Create(insumo *entity.Insumo) error
	GetByID(id string) (*entity.Insumo, error)
	// GetForUpdate obtiene el insumo bloqueando su fila (SELECT ... FOR UPDATE).
	GetForUpdate(id string) (*entity.Insumo, error)
	// UpdateStock fija el stock absoluto del insumo. Solo el motor de stock
	// debe llamarlo, y siempre dentro de la misma tx que inserta el movimiento.
	UpdateStock(id string, stock int) error
	Update(insumo *entity.Insumo) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Insumo, error)
	// ListBajoMinimo lista insumos con stock <= stock_minimo.
	ListBajoMinimo() ([]*entity.Insumo, error)
}
