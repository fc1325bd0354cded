package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soporteti/inventario/internal/domain"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
)

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo implementación de AreaRepository sobre PostgreSQL.
type AreaRepo struct {
	q Querier
}

// NewAreaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAreaRepository(q Querier) *AreaRepo {
	return &AreaRepo{q: q}
}

// Create persiste un área.
func (r *AreaRepo) Create(area *entity.Area) error {
	query := `INSERT INTO areas (id, nombre, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, area.ID, area.Nombre, area.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("insert area: %w", err)
	}
	return nil
}

// GetByID obtiene un área por ID.
func (r *AreaRepo) GetByID(id string) (*entity.Area, error) {
	query := `SELECT id, nombre, created_at FROM areas WHERE id = $1`
	var a entity.Area
	err := r.q.QueryRow(context.Background(), query, id).Scan(&a.ID, &a.Nombre, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area: %w", err)
	}
	return &a, nil
}

// Update renombra un área.
func (r *AreaRepo) Update(area *entity.Area) error {
	_, err := r.q.Exec(context.Background(), `UPDATE areas SET nombre = $2 WHERE id = $1`, area.ID, area.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("update area: %w", err)
	}
	return nil
}

// Delete elimina un área. Las salidas que la referencian bloquean el borrado
// vía FK (ErrConflict): el libro de movimientos no pierde atribución.
func (r *AreaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete area: %w", err)
	}
	return nil
}

// List lista todas las áreas ordenadas por nombre.
func (r *AreaRepo) List() ([]*entity.Area, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre, created_at FROM areas ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.Nombre, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
