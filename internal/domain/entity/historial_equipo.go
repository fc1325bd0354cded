package entity

import "time"

// TipoEventoEquipo tipo cerrado para los eventos del historial de equipos.
type TipoEventoEquipo string

const (
	EventoAgregado    TipoEventoEquipo = "Agregado"
	EventoActualizado TipoEventoEquipo = "Actualizado"
	EventoEliminado   TipoEventoEquipo = "Eliminado"
)

// HistorialEquipo es una línea append-only del historial de un equipo.
// Guarda el id del equipo por valor (sin FK con cascade) para que el historial
// sobreviva si el equipo se elimina después.
type HistorialEquipo struct {
	ID        string
	EquipoID  string
	Tipo      TipoEventoEquipo
	Detalles  string
	UsuarioID string
	Fecha     time.Time
}
