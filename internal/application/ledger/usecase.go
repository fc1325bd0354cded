package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/soporteti/inventario/internal/domain"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
)

// UseCase motor de stock: serializa y registra todos los cambios de stock de
// insumos como entradas/salidas transaccionales con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type UseCase struct {
	txRunner   TxRunner
	insumoRepo repository.InsumoRepository
	areaRepo   repository.AreaRepository
	movRepo    repository.MovimientoRepository // fuera de tx, solo lecturas
}

// NewUseCase construye el motor de stock.
func NewUseCase(txRunner TxRunner, insumoRepo repository.InsumoRepository, areaRepo repository.AreaRepository, movRepo repository.MovimientoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, insumoRepo: insumoRepo, areaRepo: areaRepo, movRepo: movRepo}
}

// RecordEntry registra una entrada: bloquea la fila del insumo, suma la
// cantidad e inserta el movimiento en la misma transacción. Devuelve el stock
// resultante.
func (uc *UseCase) RecordEntry(ctx context.Context, insumoID string, cantidad int, comentario, usuarioID string) (int, error) {
	if cantidad <= 0 {
		return 0, domain.ErrInvalidQuantity
	}

	var nuevoStock int
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovimientoRepository, insumoRepo repository.InsumoRepository) error {
		insumo, err := insumoRepo.GetForUpdate(insumoID)
		if err != nil {
			return err
		}
		if insumo == nil {
			return domain.ErrNotFound
		}
		nuevoStock = insumo.Stock + cantidad
		if err := insumoRepo.UpdateStock(insumoID, nuevoStock); err != nil {
			return err
		}
		// La fecha se toma con el bloqueo ya adquirido: el orden de fechas
		// del libro coincide con el orden de confirmación por insumo.
		return movRepo.Create(&entity.Movimiento{
			ID:              uuid.New().String(),
			InsumoID:        insumoID,
			Tipo:            entity.MovimientoEntrada,
			Cantidad:        cantidad,
			FechaMovimiento: time.Now(),
			Comentario:      comentario,
			UsuarioID:       usuarioID,
		})
	})
	if err != nil {
		return 0, err
	}
	return nuevoStock, nil
}

// ListMovimientos devuelve el historial de movimientos de un insumo, más
// reciente primero.
func (uc *UseCase) ListMovimientos(insumoID string, limit, offset int) ([]*entity.Movimiento, error) {
	insumo, err := uc.insumoRepo.GetByID(insumoID)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByInsumo(insumoID, limit, offset)
}

// RecordExit registra una salida hacia un área destino. La verificación de
// stock previa al bloqueo es solo un fast path para responder rápido; la
// verificación autoritativa ocurre después de adquirir el bloqueo de fila,
// porque dos salidas concurrentes pueden pasar ambas el chequeo previo con un
// valor ya obsoleto. Devuelve el stock resultante.
func (uc *UseCase) RecordExit(ctx context.Context, insumoID string, cantidad int, comentario, usuarioID, areaDestinoID string) (int, error) {
	if cantidad <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	if areaDestinoID == "" {
		return 0, domain.ErrAreaNotFound
	}
	area, err := uc.areaRepo.GetByID(areaDestinoID)
	if err != nil {
		return 0, err
	}
	if area == nil {
		return 0, domain.ErrAreaNotFound
	}

	// Fast path: rechazar sin abrir transacción si el stock visible ya es
	// insuficiente. No es autoritativo; se repite bajo el bloqueo.
	insumo, err := uc.insumoRepo.GetByID(insumoID)
	if err != nil {
		return 0, err
	}
	if insumo == nil {
		return 0, domain.ErrNotFound
	}
	if insumo.Stock < cantidad {
		return 0, &domain.InsufficientStockError{Stock: insumo.Stock}
	}

	var nuevoStock int
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovimientoRepository, insumoRepo repository.InsumoRepository) error {
		insumo, err := insumoRepo.GetForUpdate(insumoID)
		if err != nil {
			return err
		}
		if insumo == nil {
			return domain.ErrNotFound
		}
		// Verificación final bajo el bloqueo: otra salida pudo confirmar
		// entre el chequeo previo y la adquisición del lock.
		if insumo.Stock < cantidad {
			return &domain.InsufficientStockError{Stock: insumo.Stock}
		}
		nuevoStock = insumo.Stock - cantidad
		if err := insumoRepo.UpdateStock(insumoID, nuevoStock); err != nil {
			return err
		}
		// Fecha tomada bajo el bloqueo; ver RecordEntry.
		return movRepo.Create(&entity.Movimiento{
			ID:              uuid.New().String(),
			InsumoID:        insumoID,
			Tipo:            entity.MovimientoSalida,
			Cantidad:        cantidad,
			FechaMovimiento: time.Now(),
			Comentario:      comentario,
			UsuarioID:       usuarioID,
			AreaDestinoID:   &areaDestinoID,
		})
	})
	if err != nil {
		return 0, err
	}
	return nuevoStock, nil
}
