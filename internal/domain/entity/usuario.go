package entity

import "time"

// Roles de usuario. El rol admin habilita gestión de usuarios, categorías y áreas.
const (
	RolAdmin   = "admin"
	RolUsuario = "usuario"
)

// Usuario cuenta que puede autenticarse y quedar acreditada como actor de
// movimientos y eventos de historial.
type Usuario struct {
	ID           string
	Username     string // único
	PasswordHash string
	Nombre       string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
