package dto

// CreateUsuarioRequest body para POST /api/usuarios (solo admin).
type CreateUsuarioRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}

// UpdateUsuarioRequest body para PUT /api/usuarios/:id. Campos nil no cambian.
type UpdateUsuarioRequest struct {
	Password *string `json:"password,omitempty"`
	Nombre   *string `json:"nombre,omitempty"`
	Rol      *string `json:"rol,omitempty"`
	Activo   *bool   `json:"activo,omitempty"`
}

// UsuarioResponse representación de salida de un usuario (sin hash).
type UsuarioResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}
