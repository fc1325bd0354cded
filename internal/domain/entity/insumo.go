package entity

import "time"

// Insumo representa un consumible con stock controlado por el libro de movimientos.
// El stock solo se muta vía entradas/salidas del motor de stock o por edición
// directa de un admin; siempre debe cumplirse stock >= 0.
type Insumo struct {
	ID          string
	Nombre      string // único, no vacío
	Descripcion string
	Stock       int
	StockMinimo int
	CategoriaID *string // referencia débil: la categoría puede borrarse sin afectar el insumo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BajoMinimo indica si el stock actual está en o por debajo del umbral mínimo.
func (i *Insumo) BajoMinimo() bool {
	return i.Stock <= i.StockMinimo
}
