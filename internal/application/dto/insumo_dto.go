package dto

// CreateInsumoRequest body para POST /api/insumos. Stock es el stock inicial.
type CreateInsumoRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Stock       int     `json:"stock"`
	StockMinimo int     `json:"stock_minimo"`
	CategoriaID *string `json:"categoria_id,omitempty"`
}

// UpdateInsumoRequest body para PUT /api/insumos/:id. Campos nil no cambian.
// Stock aquí es una corrección directa de admin que NO pasa por el libro de
// movimientos.
type UpdateInsumoRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	StockMinimo *int    `json:"stock_minimo,omitempty"`
	CategoriaID *string `json:"categoria_id,omitempty"`
}

// InsumoResponse representación de salida de un insumo.
type InsumoResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Stock       int     `json:"stock"`
	StockMinimo int     `json:"stock_minimo"`
	CategoriaID *string `json:"categoria_id,omitempty"`
	BajoMinimo  bool    `json:"bajo_minimo"`
}

// InsumoListResponse listado paginado de insumos.
type InsumoListResponse struct {
	Items []InsumoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
