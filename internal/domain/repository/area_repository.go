package repository

import "github.com/soporteti/inventario/internal/domain/entity"

// AreaRepository puerto de persistencia para áreas de destino.
type AreaRepository interface {
	Create(area *entity.Area) error
	GetByID(id string) (*entity.Area, error)
	Update(area *entity.Area) error
	Delete(id string) error
	List() ([]*entity.Area, error)
}
