package entity

import "time"

// TipoMovimiento tipo cerrado para el libro de movimientos.
type TipoMovimiento string

const (
	MovimientoEntrada TipoMovimiento = "entrada" // aumenta stock
	MovimientoSalida  TipoMovimiento = "salida"  // disminuye stock, atribuida a un área destino
)

// Valido reporta si el tipo es uno de los valores cerrados.
func (t TipoMovimiento) Valido() bool {
	return t == MovimientoEntrada || t == MovimientoSalida
}

// Movimiento es una línea inmutable del libro de stock. Se inserta en la misma
// transacción que la mutación de stock del insumo; nunca se actualiza ni borra.
// El stock actual de un insumo siempre debe poder reconstruirse como
// stock_inicial + Σ(entradas) − Σ(salidas) sobre sus movimientos confirmados.
type Movimiento struct {
	ID              string
	InsumoID        string
	Tipo            TipoMovimiento
	Cantidad        int // siempre > 0; el signo lo da Tipo
	FechaMovimiento time.Time
	Comentario      string
	UsuarioID       string
	AreaDestinoID   *string // requerido en salidas, nil en entradas
}
