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

// InsumoUseCase casos de uso CRUD para insumos. La edición directa de stock es
// una corrección de admin que no pasa por el libro de movimientos; las
// entradas/salidas normales van por el motor de stock (ledger.UseCase).
type InsumoUseCase struct {
	repo repository.InsumoRepository
}

// NewInsumoUseCase construye el caso de uso.
func NewInsumoUseCase(repo repository.InsumoRepository) *InsumoUseCase {
	return &InsumoUseCase{repo: repo}
}

// Create crea un insumo con su stock inicial.
func (uc *InsumoUseCase) Create(in dto.CreateInsumoRequest) (*dto.InsumoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	insumo := &entity.Insumo{
		ID:          uuid.New().String(),
		Nombre:      nombre,
		Descripcion: in.Descripcion,
		Stock:       in.Stock,
		StockMinimo: in.StockMinimo,
		CategoriaID: in.CategoriaID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(insumo); err != nil {
		return nil, err
	}
	return toInsumoResponse(insumo), nil
}

// GetByID obtiene un insumo por ID.
func (uc *InsumoUseCase) GetByID(id string) (*dto.InsumoResponse, error) {
	insumo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	return toInsumoResponse(insumo), nil
}

// Update edita un insumo. Si Stock viene definido es un override directo de
// admin, sin movimiento asociado.
func (uc *InsumoUseCase) Update(id string, in dto.UpdateInsumoRequest) (*dto.InsumoResponse, error) {
	insumo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		insumo.Nombre = nombre
	}
	if in.Descripcion != nil {
		insumo.Descripcion = *in.Descripcion
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		insumo.Stock = *in.Stock
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		insumo.StockMinimo = *in.StockMinimo
	}
	if in.CategoriaID != nil {
		if *in.CategoriaID == "" {
			insumo.CategoriaID = nil
		} else {
			insumo.CategoriaID = in.CategoriaID
		}
	}
	insumo.UpdatedAt = time.Now()
	if err := uc.repo.Update(insumo); err != nil {
		return nil, err
	}
	return toInsumoResponse(insumo), nil
}

// Delete elimina un insumo. Si tiene movimientos asociados la FK lo bloquea y
// el repo devuelve ErrConflict: el libro de movimientos nunca queda huérfano.
func (uc *InsumoUseCase) Delete(id string) error {
	insumo, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if insumo == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista insumos con paginación.
func (uc *InsumoUseCase) List(limit, offset int) (*dto.InsumoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InsumoResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInsumoResponse(i))
	}
	return &dto.InsumoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListBajoMinimo lista insumos con stock en o por debajo del mínimo.
func (uc *InsumoUseCase) ListBajoMinimo() ([]dto.InsumoResponse, error) {
	list, err := uc.repo.ListBajoMinimo()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InsumoResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInsumoResponse(i))
	}
	return items, nil
}

func toInsumoResponse(i *entity.Insumo) *dto.InsumoResponse {
	return &dto.InsumoResponse{
		ID:          i.ID,
		Nombre:      i.Nombre,
		Descripcion: i.Descripcion,
		Stock:       i.Stock,
		StockMinimo: i.StockMinimo,
		CategoriaID: i.CategoriaID,
		BajoMinimo:  i.BajoMinimo(),
	}
}
