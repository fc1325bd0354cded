package entity

import "time"

// Categoria agrupación opcional de insumos. Referencia débil: borrar una
// categoría deja los insumos asociados sin categoría, no los elimina.
type Categoria struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
}
