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

var _ repository.InsumoRepository = (*InsumoRepo)(nil)

// InsumoRepo implementación de InsumoRepository sobre PostgreSQL (usable con
// pool o tx).
type InsumoRepo struct {
	q Querier
}

// NewInsumoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInsumoRepository(q Querier) *InsumoRepo {
	return &InsumoRepo{q: q}
}

const insumoColumns = `id, nombre, descripcion, stock, stock_minimo, id_categoria, created_at, updated_at`

// Create persiste un insumo nuevo. Nombre duplicado -> ErrNameAlreadyExists.
func (r *InsumoRepo) Create(insumo *entity.Insumo) error {
	query := `
		INSERT INTO insumos (id, nombre, descripcion, stock, stock_minimo, id_categoria, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		insumo.ID, insumo.Nombre, insumo.Descripcion, insumo.Stock,
		insumo.StockMinimo, insumo.CategoriaID, insumo.CreatedAt, insumo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *InsumoRepo) GetByID(id string) (*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get insumo")
}

// GetForUpdate obtiene el insumo bloqueando su fila (SELECT ... FOR UPDATE).
// Solo dentro de una transacción; el lock se mantiene hasta Commit/Rollback.
func (r *InsumoRepo) GetForUpdate(id string) (*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get insumo for update")
}

// UpdateStock fija el stock absoluto del insumo.
func (r *InsumoRepo) UpdateStock(id string, stock int) error {
	query := `UPDATE insumos SET stock = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Update actualiza un insumo existente.
func (r *InsumoRepo) Update(insumo *entity.Insumo) error {
	query := `
		UPDATE insumos
		SET nombre = $2, descripcion = $3, stock = $4, stock_minimo = $5, id_categoria = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		insumo.ID, insumo.Nombre, insumo.Descripcion, insumo.Stock,
		insumo.StockMinimo, insumo.CategoriaID, insumo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("update insumo: %w", err)
	}
	return nil
}

// Delete elimina un insumo. La FK de movimientos bloquea el borrado si el
// insumo tiene historial: se traduce a ErrConflict.
func (r *InsumoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM insumos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete insumo: %w", err)
	}
	return nil
}

// List lista insumos por nombre con paginación.
func (r *InsumoRepo) List(limit, offset int) ([]*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos ORDER BY nombre ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListBajoMinimo lista insumos con stock <= stock_minimo.
func (r *InsumoRepo) ListBajoMinimo() ([]*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE stock <= stock_minimo ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list insumos bajo mínimo: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *InsumoRepo) scanOne(row pgx.Row, op string) (*entity.Insumo, error) {
	var i entity.Insumo
	err := row.Scan(&i.ID, &i.Nombre, &i.Descripcion, &i.Stock, &i.StockMinimo,
		&i.CategoriaID, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &i, nil
}

func (r *InsumoRepo) scanMany(rows pgx.Rows) ([]*entity.Insumo, error) {
	var list []*entity.Insumo
	for rows.Next() {
		var i entity.Insumo
		if err := rows.Scan(&i.ID, &i.Nombre, &i.Descripcion, &i.Stock, &i.StockMinimo,
			&i.CategoriaID, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
