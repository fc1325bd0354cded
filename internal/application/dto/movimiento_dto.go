package dto

import "time"

// RegisterEntradaRequest body para POST /api/insumos/:id/entradas.
type RegisterEntradaRequest struct {
	Cantidad   int    `json:"cantidad"`
	Comentario string `json:"comentario"`
}

// RegisterSalidaRequest body para POST /api/insumos/:id/salidas.
// AreaDestinoID es obligatorio: toda salida se atribuye a un área consumidora.
type RegisterSalidaRequest struct {
	Cantidad      int    `json:"cantidad"`
	Comentario    string `json:"comentario"`
	AreaDestinoID string `json:"area_destino_id"`
}

// MovimientoResponse línea del libro de movimientos.
type MovimientoResponse struct {
	ID              string    `json:"id"`
	InsumoID        string    `json:"insumo_id"`
	Tipo            string    `json:"tipo"`
	Cantidad        int       `json:"cantidad"`
	FechaMovimiento time.Time `json:"fecha_movimiento"`
	Comentario      string    `json:"comentario"`
	UsuarioID       string    `json:"usuario_id"`
	AreaDestinoID   *string   `json:"area_destino_id,omitempty"`
}

// StockResponse resultado de registrar una entrada o salida.
type StockResponse struct {
	InsumoID   string `json:"insumo_id"`
	NuevoStock int    `json:"nuevo_stock"`
}
