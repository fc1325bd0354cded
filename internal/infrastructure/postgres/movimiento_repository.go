package postgres

import (
	"context"
	"fmt"

	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación append-only del libro de movimientos sobre
// PostgreSQL (usable con pool o tx). No expone Update ni Delete: una fila de
// movimientos es inmutable una vez insertada.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, id_insumo, tipo_movimiento, cantidad, fecha_movimiento, comentario, id_usuario, id_area_destino)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.InsumoID, string(mov.Tipo), mov.Cantidad,
		mov.FechaMovimiento, mov.Comentario, mov.UsuarioID, mov.AreaDestinoID,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// ListByInsumo lista movimientos de un insumo, más reciente primero. El id
// desempata fechas iguales para que la paginación sea estable.
func (r *MovimientoRepo) ListByInsumo(insumoID string, limit, offset int) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, id_insumo, tipo_movimiento, cantidad, fecha_movimiento, comentario, id_usuario, id_area_destino
		FROM movimientos WHERE id_insumo = $1
		ORDER BY fecha_movimiento DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, insumoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		var tipo string
		if err := rows.Scan(&m.ID, &m.InsumoID, &tipo, &m.Cantidad,
			&m.FechaMovimiento, &m.Comentario, &m.UsuarioID, &m.AreaDestinoID); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		m.Tipo = entity.TipoMovimiento(tipo)
		list = append(list, &m)
	}
	return list, rows.Err()
}
