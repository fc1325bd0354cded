package dto

import "time"

// EquipoRequest body para crear o actualizar un equipo informático.
type EquipoRequest struct {
	Nombre          string `json:"nombre"`
	Tipo            string `json:"tipo"`
	Marca           string `json:"marca"`
	Modelo          string `json:"modelo"`
	NumSerie        string `json:"num_serie"`
	Patrimonio      string `json:"patrimonio"`
	Procesador      string `json:"procesador"`
	RAM             string `json:"ram"`
	Almacenamiento  string `json:"almacenamiento"`
	SO              string `json:"so"`
	UsuarioAsignado string `json:"usuario_asignado"`
	Estado          string `json:"estado"`
	Ubicacion       string `json:"ubicacion"`
	FechaAsignacion string `json:"fecha_asignacion"` // YYYY-MM-DD, vacío = sin asignar
	Observaciones   string `json:"observaciones"`
}

// EquipoResponse representación de salida de un equipo.
type EquipoResponse struct {
	ID              string     `json:"id"`
	Nombre          string     `json:"nombre"`
	Tipo            string     `json:"tipo"`
	Marca           string     `json:"marca"`
	Modelo          string     `json:"modelo"`
	NumSerie        string     `json:"num_serie"`
	Patrimonio      string     `json:"patrimonio,omitempty"`
	Procesador      string     `json:"procesador,omitempty"`
	RAM             string     `json:"ram,omitempty"`
	Almacenamiento  string     `json:"almacenamiento,omitempty"`
	SO              string     `json:"so,omitempty"`
	UsuarioAsignado string     `json:"usuario_asignado,omitempty"`
	Estado          string     `json:"estado"`
	Ubicacion       string     `json:"ubicacion,omitempty"`
	FechaAsignacion *time.Time `json:"fecha_asignacion,omitempty"`
	Observaciones   string     `json:"observaciones,omitempty"`
}

// EquipoListResponse listado paginado de equipos.
type EquipoListResponse struct {
	Items []EquipoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// HistorialEquipoResponse evento del historial de un equipo.
type HistorialEquipoResponse struct {
	ID        string    `json:"id"`
	EquipoID  string    `json:"equipo_id"`
	Tipo      string    `json:"tipo"`
	Detalles  string    `json:"detalles"`
	UsuarioID string    `json:"usuario_id"`
	Fecha     time.Time `json:"fecha"`
}
