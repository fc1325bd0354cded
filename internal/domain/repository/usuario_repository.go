package repository

import "github.com/soporteti/inventario/internal/domain/entity"

// UsuarioRepository puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByUsername(username string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	Delete(id string) error
	List() ([]*entity.Usuario, error)
}
