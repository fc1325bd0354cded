package postgres

import (
	"context"
	"fmt"

	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
)

var _ repository.HistorialEquipoRepository = (*HistorialEquipoRepo)(nil)

// HistorialEquipoRepo implementación append-only del historial de equipos.
// equipo_id se guarda por valor (sin FK) para que el historial sobreviva al
// borrado del equipo.
type HistorialEquipoRepo struct {
	q Querier
}

// NewHistorialEquipoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistorialEquipoRepository(q Querier) *HistorialEquipoRepo {
	return &HistorialEquipoRepo{q: q}
}

// Create persiste un evento de historial.
func (r *HistorialEquipoRepo) Create(entrada *entity.HistorialEquipo) error {
	query := `
		INSERT INTO historial_equipos (id, equipo_id, tipo_movimiento, detalles, usuario_id, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entrada.ID, entrada.EquipoID, string(entrada.Tipo), entrada.Detalles,
		entrada.UsuarioID, entrada.Fecha,
	)
	if err != nil {
		return fmt.Errorf("create historial equipo: %w", err)
	}
	return nil
}

// ListByEquipo lista el historial de un equipo, más reciente primero.
func (r *HistorialEquipoRepo) ListByEquipo(equipoID string, limit, offset int) ([]*entity.HistorialEquipo, error) {
	query := `
		SELECT id, equipo_id, tipo_movimiento, detalles, usuario_id, fecha
		FROM historial_equipos WHERE equipo_id = $1
		ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, equipoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list historial equipo: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistorialEquipo
	for rows.Next() {
		var h entity.HistorialEquipo
		var tipo string
		if err := rows.Scan(&h.ID, &h.EquipoID, &tipo, &h.Detalles, &h.UsuarioID, &h.Fecha); err != nil {
			return nil, fmt.Errorf("scan historial equipo: %w", err)
		}
		h.Tipo = entity.TipoEventoEquipo(tipo)
		list = append(list, &h)
	}
	return list, rows.Err()
}
