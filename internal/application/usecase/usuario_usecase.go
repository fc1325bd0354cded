package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soporteti/inventario/internal/application/dto"
	"github.com/soporteti/inventario/internal/domain"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase gestión de usuarios (solo admin).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create crea un usuario con password hasheado con bcrypt.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolUsuario
	}
	if rol != entity.RolAdmin && rol != entity.RolUsuario {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nombre := in.Nombre
	if nombre == "" {
		nombre = username
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Nombre:       nombre,
		Rol:          rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Update modifica nombre, rol, estado activo o password de un usuario.
func (uc *UsuarioUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}
	if in.Nombre != nil {
		usuario.Nombre = *in.Nombre
	}
	if in.Rol != nil {
		if *in.Rol != entity.RolAdmin && *in.Rol != entity.RolUsuario {
			return nil, domain.ErrInvalidInput
		}
		usuario.Rol = *in.Rol
	}
	if in.Activo != nil {
		usuario.Activo = *in.Activo
	}
	usuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Delete elimina un usuario.
func (uc *UsuarioUseCase) Delete(id string) error {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

// List lista todos los usuarios.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return items, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:       u.ID,
		Username: u.Username,
		Nombre:   u.Nombre,
		Rol:      u.Rol,
		Activo:   u.Activo,
	}
}
