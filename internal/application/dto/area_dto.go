package dto

// AreaRequest body para crear o renombrar un área.
type AreaRequest struct {
	Nombre string `json:"nombre"`
}

// AreaResponse representación de salida de un área.
type AreaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
