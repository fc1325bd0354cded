package repository

import "github.com/soporteti/inventario/internal/domain/entity"

// ImpresoraRepository puerto de persistencia para impresoras y su bitácora.
type ImpresoraRepository interface {
	Create(impresora *entity.Impresora) error
	GetByID(id string) (*entity.Impresora, error)
	Update(impresora *entity.Impresora) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Impresora, error)
	CreateHistorial(entrada *entity.HistorialImpresora) error
	ListHistorial(impresoraID string, limit, offset int) ([]*entity.HistorialImpresora, error)
}
