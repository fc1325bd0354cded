package dto

import "time"

// ImpresoraRequest body para crear o actualizar una impresora.
type ImpresoraRequest struct {
	Nombre      string `json:"nombre"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	NumSerie    string `json:"num_serie"`
	Ubicacion   string `json:"ubicacion"`
	Estado      string `json:"estado"`
	IP          string `json:"ip"`
	Observacion string `json:"observacion"`
}

// ImpresoraResponse representación de salida de una impresora.
type ImpresoraResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	NumSerie    string `json:"num_serie,omitempty"`
	Ubicacion   string `json:"ubicacion,omitempty"`
	Estado      string `json:"estado,omitempty"`
	IP          string `json:"ip,omitempty"`
	Observacion string `json:"observacion,omitempty"`
}

// ImpresoraListResponse listado paginado de impresoras.
type ImpresoraListResponse struct {
	Items []ImpresoraResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// AddHistorialImpresoraRequest anotación libre en la bitácora de la impresora.
type AddHistorialImpresoraRequest struct {
	TipoEvento string `json:"tipo_evento"`
	Detalle    string `json:"detalle"`
}

// HistorialImpresoraResponse línea de la bitácora de una impresora.
type HistorialImpresoraResponse struct {
	ID          string    `json:"id"`
	ImpresoraID string    `json:"impresora_id"`
	TipoEvento  string    `json:"tipo_evento"`
	Detalle     string    `json:"detalle"`
	Responsable string    `json:"responsable"`
	FechaHora   time.Time `json:"fecha_hora"`
}
