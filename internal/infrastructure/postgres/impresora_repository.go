package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
)

var _ repository.ImpresoraRepository = (*ImpresoraRepo)(nil)

// ImpresoraRepo implementación de ImpresoraRepository sobre PostgreSQL.
type ImpresoraRepo struct {
	q Querier
}

// NewImpresoraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImpresoraRepository(q Querier) *ImpresoraRepo {
	return &ImpresoraRepo{q: q}
}

const impresoraColumns = `id, nombre, marca, modelo, num_serie, ubicacion, estado, ip, observacion, created_at, updated_at`

// Create persiste una impresora.
func (r *ImpresoraRepo) Create(impresora *entity.Impresora) error {
	query := `
		INSERT INTO impresoras (` + impresoraColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		impresora.ID, impresora.Nombre, impresora.Marca, impresora.Modelo,
		impresora.NumSerie, impresora.Ubicacion, impresora.Estado, impresora.IP,
		impresora.Observacion, impresora.CreatedAt, impresora.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert impresora: %w", err)
	}
	return nil
}

// GetByID obtiene una impresora por ID.
func (r *ImpresoraRepo) GetByID(id string) (*entity.Impresora, error) {
	query := `SELECT ` + impresoraColumns + ` FROM impresoras WHERE id = $1`
	var i entity.Impresora
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Nombre, &i.Marca, &i.Modelo, &i.NumSerie, &i.Ubicacion,
		&i.Estado, &i.IP, &i.Observacion, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get impresora: %w", err)
	}
	return &i, nil
}

// Update actualiza una impresora existente.
func (r *ImpresoraRepo) Update(impresora *entity.Impresora) error {
	query := `
		UPDATE impresoras SET
			nombre = $2, marca = $3, modelo = $4, num_serie = $5, ubicacion = $6,
			estado = $7, ip = $8, observacion = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		impresora.ID, impresora.Nombre, impresora.Marca, impresora.Modelo,
		impresora.NumSerie, impresora.Ubicacion, impresora.Estado, impresora.IP,
		impresora.Observacion, impresora.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update impresora: %w", err)
	}
	return nil
}

// Delete elimina una impresora y deja su bitácora intacta (sin cascade).
func (r *ImpresoraRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM impresoras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete impresora: %w", err)
	}
	return nil
}

// List lista impresoras por nombre con paginación.
func (r *ImpresoraRepo) List(limit, offset int) ([]*entity.Impresora, error) {
	query := `SELECT ` + impresoraColumns + ` FROM impresoras ORDER BY nombre ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list impresoras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Impresora
	for rows.Next() {
		var i entity.Impresora
		if err := rows.Scan(&i.ID, &i.Nombre, &i.Marca, &i.Modelo, &i.NumSerie,
			&i.Ubicacion, &i.Estado, &i.IP, &i.Observacion, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan impresora: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// CreateHistorial añade una anotación a la bitácora.
func (r *ImpresoraRepo) CreateHistorial(entrada *entity.HistorialImpresora) error {
	query := `
		INSERT INTO impresoras_historial (id, impresora_id, tipo_evento, detalle, responsable, fecha_hora)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entrada.ID, entrada.ImpresoraID, entrada.TipoEvento, entrada.Detalle,
		entrada.Responsable, entrada.FechaHora,
	)
	if err != nil {
		return fmt.Errorf("create historial impresora: %w", err)
	}
	return nil
}

// ListHistorial lista la bitácora de una impresora, más reciente primero.
func (r *ImpresoraRepo) ListHistorial(impresoraID string, limit, offset int) ([]*entity.HistorialImpresora, error) {
	query := `
		SELECT id, impresora_id, tipo_evento, detalle, responsable, fecha_hora
		FROM impresoras_historial WHERE impresora_id = $1
		ORDER BY fecha_hora DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, impresoraID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list historial impresora: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistorialImpresora
	for rows.Next() {
		var h entity.HistorialImpresora
		if err := rows.Scan(&h.ID, &h.ImpresoraID, &h.TipoEvento, &h.Detalle,
			&h.Responsable, &h.FechaHora); err != nil {
			return nil, fmt.Errorf("scan historial impresora: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
