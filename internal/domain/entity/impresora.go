package entity

import "time"

// Impresora activo durable con bitácora libre en vez de stock.
type Impresora struct {
	ID          string
	Nombre      string
	Marca       string
	Modelo      string
	NumSerie    string
	Ubicacion   string
	Estado      string
	IP          string
	Observacion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HistorialImpresora línea de la bitácora de una impresora: una anotación
// libre con tipo de evento y responsable. No tiene semántica de stock.
type HistorialImpresora struct {
	ID          string
	ImpresoraID string
	TipoEvento  string
	Detalle     string
	Responsable string
	FechaHora   time.Time
}
