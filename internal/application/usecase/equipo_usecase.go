package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soporteti/inventario/internal/application/dto"
	"github.com/soporteti/inventario/internal/application/historial"
	"github.com/soporteti/inventario/internal/domain"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
)

// EquipoUseCase casos de uso CRUD para equipos informáticos. Toda mutación
// pasa por aquí: es el único camino de escritura, y cada transición de ciclo
// de vida (alta, edición con cambios, baja) queda en el historial vía el
// Recorder. Los fallos del historial no revierten la mutación principal.
type EquipoUseCase struct {
	repo          repository.EquipoRepository
	historialRepo repository.HistorialEquipoRepository
	recorder      *historial.Recorder
}

// NewEquipoUseCase construye el caso de uso.
func NewEquipoUseCase(repo repository.EquipoRepository, historialRepo repository.HistorialEquipoRepository, recorder *historial.Recorder) *EquipoUseCase {
	return &EquipoUseCase{repo: repo, historialRepo: historialRepo, recorder: recorder}
}

// Create crea un equipo tras validar obligatorios y unicidad de serie y
// patrimonio, y registra el evento Agregado.
func (uc *EquipoUseCase) Create(in dto.EquipoRequest, usuarioID string) (*dto.EquipoResponse, error) {
	equipo, err := uc.buildEquipo(uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	if err := uc.checkUnicidad(equipo.NumSerie, equipo.Patrimonio, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	equipo.CreatedAt = now
	equipo.UpdatedAt = now
	if err := uc.repo.Create(equipo); err != nil {
		return nil, err
	}
	_ = uc.recorder.RecordCreated(equipo, usuarioID) // no fatal; ya logueado
	return toEquipoResponse(equipo), nil
}

// GetByID obtiene un equipo por ID.
func (uc *EquipoUseCase) GetByID(id string) (*dto.EquipoResponse, error) {
	equipo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipo == nil {
		return nil, domain.ErrNotFound
	}
	return toEquipoResponse(equipo), nil
}

// Update actualiza un equipo completo. Conserva el estado previo para que el
// Recorder genere el diff campo a campo; una edición sin cambios no escribe
// historial.
func (uc *EquipoUseCase) Update(id string, in dto.EquipoRequest, usuarioID string) (*dto.EquipoResponse, error) {
	antes, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if antes == nil {
		return nil, domain.ErrNotFound
	}
	despues, err := uc.buildEquipo(id, in)
	if err != nil {
		return nil, err
	}
	if err := uc.checkUnicidad(despues.NumSerie, despues.Patrimonio, id); err != nil {
		return nil, err
	}
	despues.CreatedAt = antes.CreatedAt
	despues.UpdatedAt = time.Now()
	if err := uc.repo.Update(despues); err != nil {
		return nil, err
	}
	_ = uc.recorder.RecordUpdated(antes, despues, usuarioID)
	return toEquipoResponse(despues), nil
}

// Delete elimina un equipo. El evento Eliminado se escribe antes del borrado y
// es best-effort: si la escritura falla, la eliminación continúa y la omisión
// solo queda en el log.
func (uc *EquipoUseCase) Delete(id string, usuarioID string) error {
	equipo, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if equipo == nil {
		return domain.ErrNotFound
	}
	_ = uc.recorder.RecordDeleted(equipo, usuarioID)
	return uc.repo.Delete(id)
}

// List lista equipos con paginación.
func (uc *EquipoUseCase) List(limit, offset int) (*dto.EquipoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEquipoResponse(e))
	}
	return &dto.EquipoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListHistorial devuelve el historial de un equipo, más reciente primero. No
// exige que el equipo exista: el historial sobrevive a la eliminación.
func (uc *EquipoUseCase) ListHistorial(equipoID string, limit, offset int) ([]dto.HistorialEquipoResponse, error) {
	list, err := uc.historialRepo.ListByEquipo(equipoID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistorialEquipoResponse, 0, len(list))
	for _, h := range list {
		items = append(items, dto.HistorialEquipoResponse{
			ID:        h.ID,
			EquipoID:  h.EquipoID,
			Tipo:      string(h.Tipo),
			Detalles:  h.Detalles,
			UsuarioID: h.UsuarioID,
			Fecha:     h.Fecha,
		})
	}
	return items, nil
}

// buildEquipo valida el request y arma la entidad (sin timestamps).
func (uc *EquipoUseCase) buildEquipo(id string, in dto.EquipoRequest) (*entity.Equipo, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Tipo) == "" ||
		strings.TrimSpace(in.Marca) == "" || strings.TrimSpace(in.Modelo) == "" ||
		strings.TrimSpace(in.NumSerie) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.EstadoEquipoValido(in.Estado) {
		return nil, domain.ErrInvalidInput
	}
	var fechaAsignacion *time.Time
	if in.FechaAsignacion != "" {
		f, err := time.Parse("2006-01-02", in.FechaAsignacion)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fechaAsignacion = &f
	}
	return &entity.Equipo{
		ID:              id,
		Nombre:          strings.TrimSpace(in.Nombre),
		Tipo:            in.Tipo,
		Marca:           in.Marca,
		Modelo:          in.Modelo,
		NumSerie:        strings.TrimSpace(in.NumSerie),
		Patrimonio:      strings.TrimSpace(in.Patrimonio),
		Procesador:      in.Procesador,
		RAM:             in.RAM,
		Almacenamiento:  in.Almacenamiento,
		SO:              in.SO,
		UsuarioAsignado: in.UsuarioAsignado,
		Estado:          in.Estado,
		Ubicacion:       in.Ubicacion,
		FechaAsignacion: fechaAsignacion,
		Observaciones:   in.Observaciones,
	}, nil
}

// checkUnicidad verifica serie y patrimonio contra otros equipos. Es un
// pre-chequeo para mensajes claros; la constraint UNIQUE de la tabla sigue
// siendo la garantía final (23505 -> ErrDuplicate en el repo).
func (uc *EquipoUseCase) checkUnicidad(numSerie, patrimonio, excludeID string) error {
	existe, err := uc.repo.ExistsNumSerie(numSerie, excludeID)
	if err != nil {
		return err
	}
	if existe {
		return domain.ErrDuplicate
	}
	if patrimonio != "" {
		existe, err = uc.repo.ExistsPatrimonio(patrimonio, excludeID)
		if err != nil {
			return err
		}
		if existe {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func toEquipoResponse(e *entity.Equipo) *dto.EquipoResponse {
	return &dto.EquipoResponse{
		ID:              e.ID,
		Nombre:          e.Nombre,
		Tipo:            e.Tipo,
		Marca:           e.Marca,
		Modelo:          e.Modelo,
		NumSerie:        e.NumSerie,
		Patrimonio:      e.Patrimonio,
		Procesador:      e.Procesador,
		RAM:             e.RAM,
		Almacenamiento:  e.Almacenamiento,
		SO:              e.SO,
		UsuarioAsignado: e.UsuarioAsignado,
		Estado:          e.Estado,
		Ubicacion:       e.Ubicacion,
		FechaAsignacion: e.FechaAsignacion,
		Observaciones:   e.Observaciones,
	}
}
