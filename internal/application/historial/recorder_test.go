package historial_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soporteti/inventario/internal/application/historial"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/pkg/logger"
)

// fakeHistorialRepo acumula los eventos escritos; failNext fuerza el fallo de
// la próxima escritura.
type fakeHistorialRepo struct {
	eventos  []*entity.HistorialEquipo
	failNext bool
}

func (r *fakeHistorialRepo) Create(h *entity.HistorialEquipo) error {
	if r.failNext {
		r.failNext = false
		return errors.New("historial caído")
	}
	r.eventos = append(r.eventos, h)
	return nil
}

func (r *fakeHistorialRepo) ListByEquipo(equipoID string, _, _ int) ([]*entity.HistorialEquipo, error) {
	var out []*entity.HistorialEquipo
	for _, h := range r.eventos {
		if h.EquipoID == equipoID {
			out = append(out, h)
		}
	}
	return out, nil
}

func buildRecorder() (*historial.Recorder, *fakeHistorialRepo) {
	repo := &fakeHistorialRepo{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return historial.NewRecorder(repo, log), repo
}

func equipoBase() *entity.Equipo {
	fecha := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &entity.Equipo{
		ID:              "eq-01",
		Nombre:          "PC Recepción",
		Tipo:            "Desktop",
		Marca:           "Dell",
		Modelo:          "OptiPlex 7010",
		NumSerie:        "SN-1234",
		UsuarioAsignado: "mgarcia",
		Estado:          entity.EstadoAsignado,
		Ubicacion:       "Recepción",
		FechaAsignacion: &fecha,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DiffEquipos
// ──────────────────────────────────────────────────────────────────────────────

func TestDiffEquipos_DetectaCambios(t *testing.T) {
	antes := equipoBase()
	despues := *antes
	despues.Marca = "HP"
	despues.Ubicacion = "Sala de Juntas"

	cambios := historial.DiffEquipos(antes, &despues)
	require.Len(t, cambios, 2)
	assert.Equal(t, "Marca cambió de 'Dell' a 'HP'.", cambios[0])
	assert.Equal(t, "Ubicación cambió de 'Recepción' a 'Sala de Juntas'.", cambios[1])
}

func TestDiffEquipos_SinCambios(t *testing.T) {
	antes := equipoBase()
	despues := *antes

	assert.Empty(t, historial.DiffEquipos(antes, &despues),
		"un estado idéntico no debe producir cláusulas")
}

func TestDiffEquipos_NormalizaVacios(t *testing.T) {
	antes := equipoBase()
	despues := *antes
	despues.UsuarioAsignado = ""

	cambios := historial.DiffEquipos(antes, &despues)
	require.Len(t, cambios, 1)
	assert.Equal(t, "Usuario Asignado cambió de 'mgarcia' a 'Vacío'.", cambios[0],
		"los valores vacíos se muestran con el centinela")
}

func TestDiffEquipos_FechaCanonica(t *testing.T) {
	antes := equipoBase()
	despues := *antes
	otra := time.Date(2025, 7, 1, 15, 30, 0, 0, time.UTC)
	despues.FechaAsignacion = &otra

	cambios := historial.DiffEquipos(antes, &despues)
	require.Len(t, cambios, 1)
	assert.Equal(t, "Fecha de Asignación cambió de '2025-03-10' a '2025-07-01'.", cambios[0],
		"las fechas se comparan en formato YYYY-MM-DD, sin hora")
}

func TestDiffEquipos_FechaNilEsVacio(t *testing.T) {
	antes := equipoBase()
	despues := *antes
	despues.FechaAsignacion = nil

	cambios := historial.DiffEquipos(antes, &despues)
	require.Len(t, cambios, 1)
	assert.Equal(t, "Fecha de Asignación cambió de '2025-03-10' a 'Vacío'.", cambios[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Recorder
// ──────────────────────────────────────────────────────────────────────────────

func TestRecorder_Alta(t *testing.T) {
	rec, repo := buildRecorder()

	require.NoError(t, rec.RecordCreated(equipoBase(), "user-1"))
	require.Len(t, repo.eventos, 1)

	ev := repo.eventos[0]
	assert.Equal(t, entity.EventoAgregado, ev.Tipo)
	assert.Equal(t, "eq-01", ev.EquipoID)
	assert.Equal(t, "user-1", ev.UsuarioID)
	assert.Equal(t, "Equipo agregado. Tipo: Desktop, Marca: Dell, Modelo: OptiPlex 7010, Serie: SN-1234", ev.Detalles)
}

func TestRecorder_EdicionSinCambiosNoEscribe(t *testing.T) {
	rec, repo := buildRecorder()
	antes := equipoBase()
	despues := *antes

	require.NoError(t, rec.RecordUpdated(antes, &despues, "user-1"))
	assert.Empty(t, repo.eventos, "reenviar un formulario idéntico no genera evento")
}

func TestRecorder_EdicionConCambios(t *testing.T) {
	rec, repo := buildRecorder()
	antes := equipoBase()
	despues := *antes
	despues.Estado = entity.EstadoEnReparacion

	require.NoError(t, rec.RecordUpdated(antes, &despues, "user-1"))
	require.Len(t, repo.eventos, 1)

	ev := repo.eventos[0]
	assert.Equal(t, entity.EventoActualizado, ev.Tipo)
	assert.Equal(t, "Equipo actualizado. Estado cambió de 'Asignado' a 'En Reparación'.", ev.Detalles)
}

func TestRecorder_Eliminacion(t *testing.T) {
	rec, repo := buildRecorder()

	require.NoError(t, rec.RecordDeleted(equipoBase(), "user-1"))
	require.Len(t, repo.eventos, 1)
	assert.Equal(t, entity.EventoEliminado, repo.eventos[0].Tipo)
	assert.Equal(t, "Equipo eliminado. Detalles: PC Recepción (Serie: SN-1234)", repo.eventos[0].Detalles)
}

func TestRecorder_EliminacionSinSerie(t *testing.T) {
	rec, repo := buildRecorder()
	eq := equipoBase()
	eq.NumSerie = ""

	require.NoError(t, rec.RecordDeleted(eq, "user-1"))
	require.Len(t, repo.eventos, 1)
	assert.Equal(t, "Equipo eliminado. Detalles: PC Recepción (Serie: N/A)", repo.eventos[0].Detalles)
}

func TestRecorder_FalloDeEscrituraSePropaga(t *testing.T) {
	rec, repo := buildRecorder()
	repo.failNext = true

	err := rec.RecordCreated(equipoBase(), "user-1")
	assert.Error(t, err, "el caller decide si el fallo es fatal; aquí solo se reporta")
	assert.Empty(t, repo.eventos)
}
