package repository

import "github.com/soporteti/inventario/internal/domain/entity"

// EquipoRepository puerto de persistencia para equipos informáticos.
type EquipoRepository interface {
	Create(equipo *entity.Equipo) error
	GetByID(id string) (*entity.Equipo, error)
	Update(equipo *entity.Equipo) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Equipo, error)
	// ExistsNumSerie reporta si otro equipo (id != excludeID) ya usa el número de serie.
	ExistsNumSerie(numSerie, excludeID string) (bool, error)
	// ExistsPatrimonio reporta si otro equipo ya usa el número de patrimonio.
	ExistsPatrimonio(patrimonio, excludeID string) (bool, error)
}
