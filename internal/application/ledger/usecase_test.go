package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soporteti/inventario/internal/application/ledger"
	"github.com/soporteti/inventario/internal/domain"
	"github.com/soporteti/inventario/internal/domain/entity"
	"github.com/soporteti/inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado compartido de los fakes. txMu serializa las
// "transacciones" igual que lo haría el bloqueo de fila en PostgreSQL; mu
// protege los datos, porque las lecturas fuera de transacción (el chequeo
// previo de stock) corren en paralelo con una transacción abierta.
type fakeStore struct {
	txMu    sync.Mutex
	mu      sync.Mutex
	insumos map[string]*entity.Insumo
	movs    []*entity.Movimiento
	areas   map[string]*entity.Area
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		insumos: make(map[string]*entity.Insumo),
		areas:   make(map[string]*entity.Area),
	}
}

type fakeInsumoRepo struct{ s *fakeStore }

func (r *fakeInsumoRepo) Create(i *entity.Insumo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.insumos[i.ID] = i
	return nil
}
func (r *fakeInsumoRepo) GetByID(id string) (*entity.Insumo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.insumos[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}
func (r *fakeInsumoRepo) GetForUpdate(id string) (*entity.Insumo, error) { return r.GetByID(id) }
func (r *fakeInsumoRepo) UpdateStock(id string, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.insumos[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.Stock = stock
	return nil
}
func (r *fakeInsumoRepo) Update(i *entity.Insumo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.insumos[i.ID] = i
	return nil
}
func (r *fakeInsumoRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.insumos, id)
	return nil
}
func (r *fakeInsumoRepo) List(_, _ int) ([]*entity.Insumo, error)   { return nil, nil }
func (r *fakeInsumoRepo) ListBajoMinimo() ([]*entity.Insumo, error) { return nil, nil }

type fakeMovimientoRepo struct{ s *fakeStore }

func (r *fakeMovimientoRepo) Create(m *entity.Movimiento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movs = append(r.s.movs, m)
	return nil
}
func (r *fakeMovimientoRepo) ListByInsumo(insumoID string, _, _ int) ([]*entity.Movimiento, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Movimiento
	for _, m := range r.s.movs {
		if m.InsumoID == insumoID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeAreaRepo struct{ s *fakeStore }

func (r *fakeAreaRepo) Create(a *entity.Area) error { r.s.areas[a.ID] = a; return nil }
func (r *fakeAreaRepo) GetByID(id string) (*entity.Area, error) {
	a, ok := r.s.areas[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}
func (r *fakeAreaRepo) Update(a *entity.Area) error   { r.s.areas[a.ID] = a; return nil }
func (r *fakeAreaRepo) Delete(id string) error        { delete(r.s.areas, id); return nil }
func (r *fakeAreaRepo) List() ([]*entity.Area, error) { return nil, nil }

// fakeTxRunner serializa cada fn con txMu y revierte el estado si fn devuelve
// error, imitando Commit/Rollback. Los repos que pasa a fn toman mu operación
// por operación, nunca durante todo fn, para que las lecturas concurrentes
// fuera de transacción no bloqueen ni corran sobre datos compartidos.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) snapshot() (map[string]*entity.Insumo, int) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	snap := make(map[string]*entity.Insumo, len(t.s.insumos))
	for k, v := range t.s.insumos {
		cp := *v
		snap[k] = &cp
	}
	return snap, len(t.s.movs)
}

func (t *fakeTxRunner) rollback(snapInsumos map[string]*entity.Insumo, snapMovs int) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.insumos = snapInsumos
	t.s.movs = t.s.movs[:snapMovs]
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.MovimientoRepository, repository.InsumoRepository) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	snapInsumos, snapMovs := t.snapshot()

	err := fn(&fakeMovimientoRepo{s: t.s}, &fakeInsumoRepo{s: t.s})
	if err != nil {
		t.rollback(snapInsumos, snapMovs)
	}
	return err
}

func buildUseCase(t *testing.T, stockInicial int) (*ledger.UseCase, *fakeStore) {
	t.Helper()
	s := newFakeStore()
	s.insumos["toner-01"] = &entity.Insumo{
		ID:          "toner-01",
		Nombre:      "Tóner HP 85A",
		Stock:       stockInicial,
		StockMinimo: 2,
		CreatedAt:   time.Now(),
	}
	s.areas["area-admision"] = &entity.Area{ID: "area-admision", Nombre: "Admisión"}
	uc := ledger.NewUseCase(&fakeTxRunner{s: s}, &fakeInsumoRepo{s: s}, &fakeAreaRepo{s: s}, &fakeMovimientoRepo{s: s})
	return uc, s
}

// reconstruir aplica la invariante del libro: stock inicial + Σ entradas − Σ salidas.
func reconstruir(stockInicial int, movs []*entity.Movimiento) int {
	stock := stockInicial
	for _, m := range movs {
		if m.Tipo == entity.MovimientoEntrada {
			stock += m.Cantidad
		} else {
			stock -= m.Cantidad
		}
	}
	return stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_SumaStockYRegistraMovimiento(t *testing.T) {
	uc, s := buildUseCase(t, 5)

	nuevo, err := uc.RecordEntry(context.Background(), "toner-01", 3, "compra mensual", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 8, nuevo, "5 + 3 debe dar 8")
	assert.Equal(t, 8, s.insumos["toner-01"].Stock)

	require.Len(t, s.movs, 1, "debe quedar exactamente un movimiento")
	mov := s.movs[0]
	assert.Equal(t, entity.MovimientoEntrada, mov.Tipo)
	assert.Equal(t, 3, mov.Cantidad)
	assert.Equal(t, "user-1", mov.UsuarioID)
	assert.Nil(t, mov.AreaDestinoID, "una entrada no tiene área destino")
}

func TestRecordEntry_CantidadInvalida(t *testing.T) {
	uc, s := buildUseCase(t, 5)

	for _, cantidad := range []int{0, -3} {
		_, err := uc.RecordEntry(context.Background(), "toner-01", cantidad, "", "user-1")
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Equal(t, 5, s.insumos["toner-01"].Stock, "el stock no debe cambiar")
	assert.Empty(t, s.movs, "no debe registrarse ningún movimiento")
}

func TestRecordEntry_InsumoInexistente(t *testing.T) {
	uc, s := buildUseCase(t, 5)

	_, err := uc.RecordEntry(context.Background(), "no-existe", 3, "", "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.movs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordExit_DescuentaYAtribuyeArea(t *testing.T) {
	uc, s := buildUseCase(t, 10)

	nuevo, err := uc.RecordExit(context.Background(), "toner-01", 4, "reposición impresora", "user-1", "area-admision")
	require.NoError(t, err)
	assert.Equal(t, 6, nuevo)

	require.Len(t, s.movs, 1)
	mov := s.movs[0]
	assert.Equal(t, entity.MovimientoSalida, mov.Tipo)
	require.NotNil(t, mov.AreaDestinoID, "toda salida debe atribuirse a un área")
	assert.Equal(t, "area-admision", *mov.AreaDestinoID)
}

func TestRecordExit_StockInsuficiente(t *testing.T) {
	uc, s := buildUseCase(t, 2)

	_, err := uc.RecordExit(context.Background(), "toner-01", 5, "", "user-1", "area-admision")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Stock, "el error debe traer el stock disponible")

	assert.Equal(t, 2, s.insumos["toner-01"].Stock, "una salida rechazada no toca el stock")
	assert.Empty(t, s.movs, "una salida rechazada no deja rastro en el libro")
}

func TestRecordExit_AreaInexistente(t *testing.T) {
	uc, s := buildUseCase(t, 10)

	_, err := uc.RecordExit(context.Background(), "toner-01", 1, "", "user-1", "area-fantasma")
	assert.ErrorIs(t, err, domain.ErrAreaNotFound)
	assert.Equal(t, 10, s.insumos["toner-01"].Stock)
}

// Dos salidas concurrentes de 6 sobre stock 10: ambas pasan el chequeo previo
// con el valor obsoleto, pero la verificación bajo el bloqueo debe dejar pasar
// exactamente una. La otra recibe el stock real restante.
func TestRecordExit_DobleSalidaConcurrente(t *testing.T) {
	uc, s := buildUseCase(t, 10)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, results[idx] = uc.RecordExit(context.Background(), "toner-01", 6, "", "user-1", "area-admision")
		}(i)
	}
	wg.Wait()

	var exitos, rechazos int
	for _, err := range results {
		if err == nil {
			exitos++
			continue
		}
		rechazos++
		var stockErr *domain.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 4, stockErr.Stock, "el rechazo debe reportar el stock tras la salida ganadora")
	}
	assert.Equal(t, 1, exitos, "exactamente una salida debe confirmar")
	assert.Equal(t, 1, rechazos, "la otra debe rechazarse por stock insuficiente")

	assert.Equal(t, 4, s.insumos["toner-01"].Stock, "10 - 6 = 4; nunca negativo")
	assert.Len(t, s.movs, 1, "solo la salida confirmada queda en el libro")
}

// La fecha del movimiento se asigna después de adquirir el bloqueo, no al
// llegar la petición: un movimiento que esperó por el lock no puede quedar
// fechado antes que el que le ganó, así el orden de fechas del libro sigue el
// orden de confirmación.
func TestRecordEntry_FechaSeAsignaBajoElBloqueo(t *testing.T) {
	uc, s := buildUseCase(t, 5)

	// Simula una transacción ajena que retiene el bloqueo.
	s.txMu.Lock()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.RecordEntry(context.Background(), "toner-01", 1, "", "user-1")
	}()

	time.Sleep(20 * time.Millisecond)
	liberado := time.Now()
	s.txMu.Unlock()
	<-done

	require.Len(t, s.movs, 1)
	assert.False(t, s.movs[0].FechaMovimiento.Before(liberado),
		"la fecha debe ser posterior a la liberación del bloqueo que la entrada esperó")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante de reconstrucción
// ──────────────────────────────────────────────────────────────────────────────

func TestLibro_ReconstruyeStockDesdeMovimientos(t *testing.T) {
	uc, s := buildUseCase(t, 10)
	ctx := context.Background()

	_, err := uc.RecordEntry(ctx, "toner-01", 5, "", "user-1")
	require.NoError(t, err)
	_, err = uc.RecordExit(ctx, "toner-01", 3, "", "user-1", "area-admision")
	require.NoError(t, err)
	_, err = uc.RecordExit(ctx, "toner-01", 7, "", "user-2", "area-admision")
	require.NoError(t, err)
	_, err = uc.RecordEntry(ctx, "toner-01", 2, "", "user-2")
	require.NoError(t, err)

	// Una salida rechazada no debe romper la invariante.
	_, err = uc.RecordExit(ctx, "toner-01", 100, "", "user-1", "area-admision")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, reconstruir(10, s.movs), s.insumos["toner-01"].Stock,
		"stock actual = stock inicial + Σ entradas − Σ salidas")
}

func TestListMovimientos_InsumoInexistente(t *testing.T) {
	uc, _ := buildUseCase(t, 5)

	_, err := uc.ListMovimientos("no-existe", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
