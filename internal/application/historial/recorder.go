package historial

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
	"github.com/soporteti/inventario/pkg/logger"
)

// Recorder escribe el historial append-only de equipos: un evento por alta,
// uno por edición con al menos un cambio detectado y uno por eliminación.
//
// Los fallos de escritura del historial nunca son fatales para la operación
// principal: la mutación del equipo ya confirmó y perder una línea de
// historial es recuperable; perder la mutación no. Los fallos se loguean en
// warn y se devuelven para que el handler pueda adjuntar un aviso no
// bloqueante junto al mensaje de éxito.
type Recorder struct {
	repo repository.HistorialEquipoRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.HistorialEquipoRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// RecordCreated registra el alta de un equipo con sus campos identificatorios.
func (r *Recorder) RecordCreated(equipo *entity.Equipo, usuarioID string) error {
	detalles := fmt.Sprintf("Equipo agregado. Tipo: %s, Marca: %s, Modelo: %s, Serie: %s",
		normalizar(equipo.Tipo), normalizar(equipo.Marca), normalizar(equipo.Modelo), normalizar(equipo.NumSerie))
	return r.append(equipo.ID, entity.EventoAgregado, detalles, usuarioID)
}

// RecordUpdated compara el estado previo y el posterior de una edición y
// registra un evento con una cláusula por campo cambiado. Si tras normalizar
// ningún campo cambió, no escribe nada: reenviar un formulario idéntico no
// genera ruido en el historial.
func (r *Recorder) RecordUpdated(antes, despues *entity.Equipo, usuarioID string) error {
	cambios := DiffEquipos(antes, despues)
	if len(cambios) == 0 {
		return nil
	}
	detalles := "Equipo actualizado. " + strings.Join(cambios, " ")
	return r.append(despues.ID, entity.EventoActualizado, detalles, usuarioID)
}

// RecordDeleted registra la eliminación de un equipo. Se llama antes de borrar
// la fila; si el equipo ya no se pudo leer, el caller omite la llamada y solo
// lo deja en el log.
func (r *Recorder) RecordDeleted(equipo *entity.Equipo, usuarioID string) error {
	serie := equipo.NumSerie
	if serie == "" {
		serie = "N/A"
	}
	detalles := fmt.Sprintf("Equipo eliminado. Detalles: %s (Serie: %s)", equipo.Nombre, serie)
	return r.append(equipo.ID, entity.EventoEliminado, detalles, usuarioID)
}

func (r *Recorder) append(equipoID string, tipo entity.TipoEventoEquipo, detalles, usuarioID string) error {
	err := r.repo.Create(&entity.HistorialEquipo{
		ID:        uuid.New().String(),
		EquipoID:  equipoID,
		Tipo:      tipo,
		Detalles:  detalles,
		UsuarioID: usuarioID,
		Fecha:     time.Now(),
	})
	if err != nil {
		r.log.Warn().Err(err).
			Str("equipo_id", equipoID).
			Str("evento", string(tipo)).
			Msg("no se pudo escribir el historial del equipo")
		return err
	}
	return nil
}
