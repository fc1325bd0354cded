package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/soporteti/inventario/internal/domain"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL.
// Recibe el pool (no un Querier) porque Delete abre su propia transacción.
type CategoriaRepo struct {
	pool *pgxpool.Pool
}

// NewCategoriaRepository construye el adaptador.
func NewCategoriaRepository(pool *pgxpool.Pool) *CategoriaRepo {
	return &CategoriaRepo{pool: pool}
}

// Create persiste una categoría.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	query := `INSERT INTO categorias (id, nombre, created_at) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(context.Background(), query, categoria.ID, categoria.Nombre, categoria.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `SELECT id, nombre, created_at FROM categorias WHERE id = $1`
	var c entity.Categoria
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Nombre, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update renombra una categoría.
func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	_, err := r.pool.Exec(context.Background(), `UPDATE categorias SET nombre = $2 WHERE id = $1`, categoria.ID, categoria.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameAlreadyExists
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Delete elimina una categoría. Referencia débil: desvincula los insumos
// (id_categoria = NULL) y borra la fila en una misma transacción, para no
// dejar insumos huérfanos si el borrado falla a mitad de camino.
func (r *CategoriaRepo) Delete(id string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `UPDATE insumos SET id_categoria = NULL WHERE id_categoria = $1`, id); err != nil {
		return fmt.Errorf("desvincular insumos: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT id, nombre, created_at FROM categorias ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
