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

// ImpresoraUseCase casos de uso CRUD para impresoras y su bitácora. La
// bitácora es una línea de tiempo anotada a mano, sin semántica de stock ni
// diff automático: cada anotación lleva tipo de evento, detalle y responsable.
type ImpresoraUseCase struct {
	repo repository.ImpresoraRepository
}

// NewImpresoraUseCase construye el caso de uso.
func NewImpresoraUseCase(repo repository.ImpresoraRepository) *ImpresoraUseCase {
	return &ImpresoraUseCase{repo: repo}
}

// Create crea una impresora.
func (uc *ImpresoraUseCase) Create(in dto.ImpresoraRequest) (*dto.ImpresoraResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	impresora := &entity.Impresora{
		ID:          uuid.New().String(),
		Nombre:      strings.TrimSpace(in.Nombre),
		Marca:       in.Marca,
		Modelo:      in.Modelo,
		NumSerie:    in.NumSerie,
		Ubicacion:   in.Ubicacion,
		Estado:      in.Estado,
		IP:          in.IP,
		Observacion: in.Observacion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(impresora); err != nil {
		return nil, err
	}
	return toImpresoraResponse(impresora), nil
}

// GetByID obtiene una impresora por ID.
func (uc *ImpresoraUseCase) GetByID(id string) (*dto.ImpresoraResponse, error) {
	impresora, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if impresora == nil {
		return nil, domain.ErrNotFound
	}
	return toImpresoraResponse(impresora), nil
}

// Update actualiza una impresora completa.
func (uc *ImpresoraUseCase) Update(id string, in dto.ImpresoraRequest) (*dto.ImpresoraResponse, error) {
	impresora, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if impresora == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	impresora.Nombre = strings.TrimSpace(in.Nombre)
	impresora.Marca = in.Marca
	impresora.Modelo = in.Modelo
	impresora.NumSerie = in.NumSerie
	impresora.Ubicacion = in.Ubicacion
	impresora.Estado = in.Estado
	impresora.IP = in.IP
	impresora.Observacion = in.Observacion
	impresora.UpdatedAt = time.Now()
	if err := uc.repo.Update(impresora); err != nil {
		return nil, err
	}
	return toImpresoraResponse(impresora), nil
}

// Delete elimina una impresora.
func (uc *ImpresoraUseCase) Delete(id string) error {
	impresora, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if impresora == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista impresoras con paginación.
func (uc *ImpresoraUseCase) List(limit, offset int) (*dto.ImpresoraListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ImpresoraResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toImpresoraResponse(i))
	}
	return &dto.ImpresoraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AddHistorial añade una anotación a la bitácora de la impresora. Responsable
// es el username del actor autenticado.
func (uc *ImpresoraUseCase) AddHistorial(impresoraID string, in dto.AddHistorialImpresoraRequest, responsable string) (*dto.HistorialImpresoraResponse, error) {
	if strings.TrimSpace(in.TipoEvento) == "" || strings.TrimSpace(in.Detalle) == "" {
		return nil, domain.ErrInvalidInput
	}
	impresora, err := uc.repo.GetByID(impresoraID)
	if err != nil {
		return nil, err
	}
	if impresora == nil {
		return nil, domain.ErrNotFound
	}
	entrada := &entity.HistorialImpresora{
		ID:          uuid.New().String(),
		ImpresoraID: impresoraID,
		TipoEvento:  in.TipoEvento,
		Detalle:     in.Detalle,
		Responsable: responsable,
		FechaHora:   time.Now(),
	}
	if err := uc.repo.CreateHistorial(entrada); err != nil {
		return nil, err
	}
	return toHistorialImpresoraResponse(entrada), nil
}

// ListHistorial devuelve la bitácora de una impresora, más reciente primero.
func (uc *ImpresoraUseCase) ListHistorial(impresoraID string, limit, offset int) ([]dto.HistorialImpresoraResponse, error) {
	impresora, err := uc.repo.GetByID(impresoraID)
	if err != nil {
		return nil, err
	}
	if impresora == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListHistorial(impresoraID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistorialImpresoraResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHistorialImpresoraResponse(h))
	}
	return items, nil
}

func toImpresoraResponse(i *entity.Impresora) *dto.ImpresoraResponse {
	return &dto.ImpresoraResponse{
		ID:          i.ID,
		Nombre:      i.Nombre,
		Marca:       i.Marca,
		Modelo:      i.Modelo,
		NumSerie:    i.NumSerie,
		Ubicacion:   i.Ubicacion,
		Estado:      i.Estado,
		IP:          i.IP,
		Observacion: i.Observacion,
	}
}

func toHistorialImpresoraResponse(h *entity.HistorialImpresora) *dto.HistorialImpresoraResponse {
	return &dto.HistorialImpresoraResponse{
		ID:          h.ID,
		ImpresoraID: h.ImpresoraID,
		TipoEvento:  h.TipoEvento,
		Detalle:     h.Detalle,
		Responsable: h.Responsable,
		FechaHora:   h.FechaHora,
	}
}
