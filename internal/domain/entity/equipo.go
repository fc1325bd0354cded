package entity

import "time"

// Estados posibles de un equipo informático.
const (
	EstadoDisponible   = "Disponible"
	EstadoAsignado     = "Asignado"
	EstadoEnReparacion = "En Reparación"
	EstadoDeBaja       = "De Baja"
	EstadoExtraviado   = "Extraviado"
)

// EstadoEquipoValido reporta si el estado pertenece al conjunto cerrado.
func EstadoEquipoValido(s string) bool {
	switch s {
	case EstadoDisponible, EstadoAsignado, EstadoEnReparacion, EstadoDeBaja, EstadoExtraviado:
		return true
	}
	return false
}

// Equipo representa un activo durable rastreado individualmente (computador).
// NumSerie es único global; Patrimonio es único cuando no está vacío.
type Equipo struct {
	ID              string
	Nombre          string
	Tipo            string
	Marca           string
	Modelo          string
	NumSerie        string
	Patrimonio      string
	Procesador      string
	RAM             string
	Almacenamiento  string
	SO              string
	UsuarioAsignado string
	Estado          string
	Ubicacion       string
	FechaAsignacion *time.Time
	Observaciones   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
