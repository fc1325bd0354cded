package ledger

import (
	"context"

	"github.com/soporteti/inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// la mutación del stock y la inserción del movimiento confirman o se revierten
// juntas, sin estado parcial visible en ningún camino de salida.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		insumoRepo repository.InsumoRepository,
	) error) error
}
