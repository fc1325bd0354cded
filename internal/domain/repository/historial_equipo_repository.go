package repository

import "github.com/soporteti/inventario/internal/domain/entity"

// HistorialEquipoRepository puerto append-only del historial de equipos.
type HistorialEquipoRepository interface {
	Create(entrada *entity.HistorialEquipo) error
	ListByEquipo(equipoID string, limit, offset int) ([]*entity.HistorialEquipo, error)
}
