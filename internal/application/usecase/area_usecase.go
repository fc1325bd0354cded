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

// AreaUseCase casos de uso CRUD para áreas de destino (solo admin).
type AreaUseCase struct {
	repo repository.AreaRepository
}

// NewAreaUseCase construye el caso de uso.
func NewAreaUseCase(repo repository.AreaRepository) *AreaUseCase {
	return &AreaUseCase{repo: repo}
}

// Create crea un área.
func (uc *AreaUseCase) Create(in dto.AreaRequest) (*dto.AreaResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	area := &entity.Area{ID: uuid.New().String(), Nombre: nombre, CreatedAt: time.Now()}
	if err := uc.repo.Create(area); err != nil {
		return nil, err
	}
	return &dto.AreaResponse{ID: area.ID, Nombre: area.Nombre}, nil
}

// Update renombra un área.
func (uc *AreaUseCase) Update(id string, in dto.AreaRequest) (*dto.AreaResponse, error) {
	area, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	area.Nombre = nombre
	if err := uc.repo.Update(area); err != nil {
		return nil, err
	}
	return &dto.AreaResponse{ID: area.ID, Nombre: area.Nombre}, nil
}

// Delete elimina un área. Si hay salidas que la referencian, la FK lo bloquea
// y el repo devuelve ErrConflict.
func (uc *AreaUseCase) Delete(id string) error {
	area, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if area == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista todas las áreas ordenadas por nombre.
func (uc *AreaUseCase) List() ([]dto.AreaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AreaResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AreaResponse{ID: a.ID, Nombre: a.Nombre})
	}
	return items, nil
}
