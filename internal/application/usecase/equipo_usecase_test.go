package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soporteti/inventario/internal/application/dto"
	"github.com/soporteti/inventario/internal/application/historial"
	"github.com/soporteti/inventario/internal/application/usecase"
	"github.com/soporteti/inventario/internal/domain"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeEquipoRepo struct {
	equipos map[string]*entity.Equipo
}

func newFakeEquipoRepo() *fakeEquipoRepo {
	return &fakeEquipoRepo{equipos: make(map[string]*entity.Equipo)}
}

func (r *fakeEquipoRepo) Create(e *entity.Equipo) error { r.equipos[e.ID] = e; return nil }
func (r *fakeEquipoRepo) GetByID(id string) (*entity.Equipo, error) {
	e, ok := r.equipos[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}
func (r *fakeEquipoRepo) Update(e *entity.Equipo) error { r.equipos[e.ID] = e; return nil }
func (r *fakeEquipoRepo) Delete(id string) error        { delete(r.equipos, id); return nil }
func (r *fakeEquipoRepo) List(_, _ int) ([]*entity.Equipo, error) {
	var out []*entity.Equipo
	for _, e := range r.equipos {
		out = append(out, e)
	}
	return out, nil
}
func (r *fakeEquipoRepo) ExistsNumSerie(numSerie, excludeID string) (bool, error) {
	for _, e := range r.equipos {
		if e.NumSerie == numSerie && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeEquipoRepo) ExistsPatrimonio(patrimonio, excludeID string) (bool, error) {
	for _, e := range r.equipos {
		if e.Patrimonio == patrimonio && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeHistorialEquipoRepo struct {
	eventos []*entity.HistorialEquipo
}

func (r *fakeHistorialEquipoRepo) Create(h *entity.HistorialEquipo) error {
	r.eventos = append(r.eventos, h)
	return nil
}

func (r *fakeHistorialEquipoRepo) ListByEquipo(equipoID string, _, _ int) ([]*entity.HistorialEquipo, error) {
	var out []*entity.HistorialEquipo
	for _, h := range r.eventos {
		if h.EquipoID == equipoID {
			out = append(out, h)
		}
	}
	return out, nil
}

func buildEquipoUseCase() (*usecase.EquipoUseCase, *fakeEquipoRepo, *fakeHistorialEquipoRepo) {
	repo := newFakeEquipoRepo()
	histRepo := &fakeHistorialEquipoRepo{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	rec := historial.NewRecorder(histRepo, log)
	return usecase.NewEquipoUseCase(repo, histRepo, rec), repo, histRepo
}

func equipoRequest() dto.EquipoRequest {
	return dto.EquipoRequest{
		Nombre:   "PC Recepción",
		Tipo:     "Desktop",
		Marca:    "Dell",
		Modelo:   "OptiPlex 7010",
		NumSerie: "SN-1234",
		Estado:   entity.EstadoDisponible,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestEquipoCreate_RegistraEventoAgregado(t *testing.T) {
	uc, repo, histRepo := buildEquipoUseCase()

	out, err := uc.Create(equipoRequest(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, repo.equipos, 1)

	require.Len(t, histRepo.eventos, 1, "el alta debe dejar un evento en el historial")
	assert.Equal(t, entity.EventoAgregado, histRepo.eventos[0].Tipo)
	assert.Equal(t, out.ID, histRepo.eventos[0].EquipoID)
}

func TestEquipoCreate_SerieDuplicada(t *testing.T) {
	uc, repo, histRepo := buildEquipoUseCase()

	_, err := uc.Create(equipoRequest(), "user-1")
	require.NoError(t, err)

	otro := equipoRequest()
	otro.Nombre = "PC Bodega"
	_, err = uc.Create(otro, "user-1")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Len(t, repo.equipos, 1, "el duplicado no debe persistirse")
	assert.Len(t, histRepo.eventos, 1, "el duplicado no debe dejar evento")
}

func TestEquipoCreate_ValidaObligatoriosYEstado(t *testing.T) {
	uc, _, _ := buildEquipoUseCase()

	sinSerie := equipoRequest()
	sinSerie.NumSerie = "  "
	_, err := uc.Create(sinSerie, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	estadoLibre := equipoRequest()
	estadoLibre.Estado = "Prestado"
	_, err = uc.Create(estadoLibre, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el estado es un conjunto cerrado")

	fechaRota := equipoRequest()
	fechaRota.FechaAsignacion = "10/03/2025"
	_, err = uc.Create(fechaRota, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la fecha debe venir como YYYY-MM-DD")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestEquipoUpdate_GeneraDiffEnHistorial(t *testing.T) {
	uc, _, histRepo := buildEquipoUseCase()

	out, err := uc.Create(equipoRequest(), "user-1")
	require.NoError(t, err)

	cambio := equipoRequest()
	cambio.Estado = entity.EstadoEnReparacion
	cambio.Ubicacion = "Taller"
	_, err = uc.Update(out.ID, cambio, "user-2")
	require.NoError(t, err)

	require.Len(t, histRepo.eventos, 2)
	ev := histRepo.eventos[1]
	assert.Equal(t, entity.EventoActualizado, ev.Tipo)
	assert.Equal(t, "user-2", ev.UsuarioID)
	assert.Contains(t, ev.Detalles, "Estado cambió de 'Disponible' a 'En Reparación'.")
	assert.Contains(t, ev.Detalles, "Ubicación cambió de 'Vacío' a 'Taller'.")
}

func TestEquipoUpdate_SinCambiosNoEscribeHistorial(t *testing.T) {
	uc, _, histRepo := buildEquipoUseCase()

	out, err := uc.Create(equipoRequest(), "user-1")
	require.NoError(t, err)

	_, err = uc.Update(out.ID, equipoRequest(), "user-1")
	require.NoError(t, err)

	assert.Len(t, histRepo.eventos, 1, "una edición idéntica solo deja el evento del alta")
}

func TestEquipoUpdate_NoExiste(t *testing.T) {
	uc, _, _ := buildEquipoUseCase()

	_, err := uc.Update("no-existe", equipoRequest(), "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete + historial superviviente
// ──────────────────────────────────────────────────────────────────────────────

func TestEquipoDelete_HistorialSobrevive(t *testing.T) {
	uc, repo, _ := buildEquipoUseCase()

	out, err := uc.Create(equipoRequest(), "user-1")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID, "user-1"))
	assert.Empty(t, repo.equipos, "el equipo debe borrarse")

	// El historial del equipo borrado sigue siendo consultable.
	eventos, err := uc.ListHistorial(out.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, eventos, 2)
	assert.Equal(t, string(entity.EventoEliminado), eventos[1].Tipo)
	assert.Contains(t, eventos[1].Detalles, "Equipo eliminado. Detalles: PC Recepción (Serie: SN-1234)")
}

func TestEquipoDelete_NoExiste(t *testing.T) {
	uc, _, histRepo := buildEquipoUseCase()

	err := uc.Delete("no-existe", "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, histRepo.eventos)
}
