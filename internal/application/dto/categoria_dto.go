package dto

// CategoriaRequest body para crear o renombrar una categoría.
type CategoriaRequest struct {
	Nombre string `json:"nombre"`
}

// CategoriaResponse representación de salida de una categoría.
type CategoriaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
