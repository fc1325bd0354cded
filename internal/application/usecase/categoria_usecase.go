package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soporteti/inventario/internal/application/dto"
	"github.com/soporteti/inventario/internal/domain"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías de insumos (solo admin).
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoriaUseCase) Create(in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria := &entity.Categoria{ID: uuid.New().String(), Nombre: nombre, CreatedAt: time.Now()}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: categoria.ID, Nombre: categoria.Nombre}, nil
}

// Update renombra una categoría.
func (uc *CategoriaUseCase) Update(id string, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria.Nombre = nombre
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: categoria.ID, Nombre: categoria.Nombre}, nil
}

// Delete elimina una categoría. Los insumos asociados quedan sin categoría
// (referencia débil, el repo pone la FK en NULL antes de borrar).
func (uc *CategoriaUseCase) Delete(id string) error {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista todas las categorías ordenadas por nombre.
func (uc *CategoriaUseCase) List() ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return items, nil
}
