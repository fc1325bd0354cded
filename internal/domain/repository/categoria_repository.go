package repository

import "github.com/soporteti/inventario/internal/domain/entity"

// CategoriaRepository puerto de persistencia para categorías de insumos.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	// Delete borra la categoría y deja en NULL la referencia de los insumos
	// asociados (referencia débil, sin cascade).
	Delete(id string) error
	List() ([]*entity.Categoria, error)
}
