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

var _ repository.EquipoRepository = (*EquipoRepo)(nil)

// EquipoRepo implementación de EquipoRepository sobre PostgreSQL.
type EquipoRepo struct {
	q Querier
}

// NewEquipoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipoRepository(q Querier) *EquipoRepo {
	return &EquipoRepo{q: q}
}

const equipoColumns = `id, nombre, tipo, marca, modelo, num_serie, patrimonio, procesador, ram,
		almacenamiento, so, usuario_asignado, estado, ubicacion, fecha_asignacion, observaciones,
		created_at, updated_at`

// Create persiste un equipo. Serie o patrimonio duplicado -> ErrDuplicate.
func (r *EquipoRepo) Create(equipo *entity.Equipo) error {
	query := `
		INSERT INTO equipos_informaticos (` + equipoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		equipo.ID, equipo.Nombre, equipo.Tipo, equipo.Marca, equipo.Modelo,
		equipo.NumSerie, nullIfEmpty(equipo.Patrimonio), equipo.Procesador, equipo.RAM,
		equipo.Almacenamiento, equipo.SO, equipo.UsuarioAsignado, equipo.Estado,
		equipo.Ubicacion, equipo.FechaAsignacion, equipo.Observaciones,
		equipo.CreatedAt, equipo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipo: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *EquipoRepo) GetByID(id string) (*entity.Equipo, error) {
	query := `SELECT ` + equipoColumns + ` FROM equipos_informaticos WHERE id = $1`
	var e entity.Equipo
	var patrimonio *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nombre, &e.Tipo, &e.Marca, &e.Modelo, &e.NumSerie, &patrimonio,
		&e.Procesador, &e.RAM, &e.Almacenamiento, &e.SO, &e.UsuarioAsignado,
		&e.Estado, &e.Ubicacion, &e.FechaAsignacion, &e.Observaciones,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo: %w", err)
	}
	if patrimonio != nil {
		e.Patrimonio = *patrimonio
	}
	return &e, nil
}

// Update actualiza un equipo existente.
func (r *EquipoRepo) Update(equipo *entity.Equipo) error {
	query := `
		UPDATE equipos_informaticos SET
			nombre = $2, tipo = $3, marca = $4, modelo = $5, num_serie = $6, patrimonio = $7,
			procesador = $8, ram = $9, almacenamiento = $10, so = $11, usuario_asignado = $12,
			estado = $13, ubicacion = $14, fecha_asignacion = $15, observaciones = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		equipo.ID, equipo.Nombre, equipo.Tipo, equipo.Marca, equipo.Modelo,
		equipo.NumSerie, nullIfEmpty(equipo.Patrimonio), equipo.Procesador, equipo.RAM,
		equipo.Almacenamiento, equipo.SO, equipo.UsuarioAsignado, equipo.Estado,
		equipo.Ubicacion, equipo.FechaAsignacion, equipo.Observaciones, equipo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update equipo: %w", err)
	}
	return nil
}

// Delete elimina un equipo. El historial no tiene FK con cascade, así que las
// entradas existentes sobreviven al borrado.
func (r *EquipoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM equipos_informaticos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete equipo: %w", err)
	}
	return nil
}

// List lista equipos por nombre con paginación.
func (r *EquipoRepo) List(limit, offset int) ([]*entity.Equipo, error) {
	query := `SELECT ` + equipoColumns + ` FROM equipos_informaticos ORDER BY nombre ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list equipos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipo
	for rows.Next() {
		var e entity.Equipo
		var patrimonio *string
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Tipo, &e.Marca, &e.Modelo, &e.NumSerie,
			&patrimonio, &e.Procesador, &e.RAM, &e.Almacenamiento, &e.SO,
			&e.UsuarioAsignado, &e.Estado, &e.Ubicacion, &e.FechaAsignacion,
			&e.Observaciones, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan equipo: %w", err)
		}
		if patrimonio != nil {
			e.Patrimonio = *patrimonio
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ExistsNumSerie reporta si otro equipo ya usa el número de serie.
func (r *EquipoRepo) ExistsNumSerie(numSerie, excludeID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM equipos_informaticos WHERE num_serie = $1 AND id <> $2`
	if err := r.q.QueryRow(context.Background(), query, numSerie, excludeID).Scan(&count); err != nil {
		return false, fmt.Errorf("check num_serie: %w", err)
	}
	return count > 0, nil
}

// ExistsPatrimonio reporta si otro equipo ya usa el número de patrimonio.
func (r *EquipoRepo) ExistsPatrimonio(patrimonio, excludeID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM equipos_informaticos WHERE patrimonio = $1 AND id <> $2`
	if err := r.q.QueryRow(context.Background(), query, patrimonio, excludeID).Scan(&count); err != nil {
		return false, fmt.Errorf("check patrimonio: %w", err)
	}
	return count > 0, nil
}

// nullIfEmpty mapea "" a NULL para columnas UNIQUE opcionales (patrimonio):
// varios vacíos no deben colisionar entre sí.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
