package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore emula el estado de la base: un libro de movimientos append-only y
// el catálogo de productos. fakeTx emula la atomicidad del TxRunner real:
// toma un snapshot al entrar y lo restaura si fn retorna error, de modo que
// los tests puedan verificar que un rechazo no deja movimientos sueltos.
// ──────────────────────────────────────────────────────────────────────────────

const (
	prodA      = "00000000-0000-0000-0000-00000000000a"
	prodB      = "00000000-0000-0000-0000-00000000000b"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

type fakeStore struct {
	movements []*entity.Movement
	products  map[string]*entity.Product
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: make(map[string]*entity.Product)}
}

func (s *fakeStore) addProduct(id, code, name string, price float64) *entity.Product {
	now := time.Now()
	p := &entity.Product{
		ID:        id,
		Code:      code,
		Name:      name,
		Price:     decimal.NewFromFloat(price),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.products[id] = p
	return p
}

// seed registra un movimiento directamente en el libro, sin pasar por el
// caso de uso (estado inicial del test).
func (s *fakeStore) seed(productID, typ string, qty int64) {
	s.movements = append(s.movements, &entity.Movement{
		ID:        productID + "-seed",
		ProductID: productID,
		Type:      typ,
		Quantity:  qty,
		CreatedAt: time.Now(),
	})
}

// fakeMovementRepo implementa repository.MovementRepository sobre el store.
type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if m.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *fakeMovementRepo) SumByProduct(productID string) (int64, error) {
	var sum int64
	for _, m := range r.s.movements {
		if m.ProductID != productID {
			continue
		}
		if m.Type == entity.MovementTypeIN {
			sum += m.Quantity
		} else {
			sum -= m.Quantity
		}
	}
	return sum, nil
}

func (r *fakeMovementRepo) SumByProducts(productIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(productIDs))
	for _, id := range productIDs {
		sum, _ := r.SumByProduct(id)
		out[id] = sum
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	var all []*entity.Movement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			all = append(all, m)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// fakeProductRepo implementa repository.ProductRepository sobre el store.
type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Code == code && p.DeletedAt == nil {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	p, ok := r.s.products[id]
	if !ok || p.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	p.DeletedAt = &now
	return nil
}

// fakeTx restaura el snapshot del libro si fn falla (rollback).
type fakeTx struct{ s *fakeStore }

func (t *fakeTx) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := make([]*entity.Movement, len(t.s.movements))
	copy(snapshot, t.s.movements)
	if err := fn(&fakeMovementRepo{t.s}, &fakeProductRepo{t.s}); err != nil {
		t.s.movements = snapshot
		return err
	}
	return nil
}

func newUseCase(s *fakeStore) *inventory.MovementUseCase {
	return inventory.NewMovementUseCase(&fakeTx{s}, &fakeMovementRepo{s}, &fakeProductRepo{s})
}

// ──────────────────────────────────────────────────────────────────────────────
// EnsureAvailable (guard de stock)
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureAvailable_StockSuficiente(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	s.seed(prodA, entity.MovementTypeIN, 10)

	err := inventory.EnsureAvailable(&fakeMovementRepo{s}, prodA, 10)
	assert.NoError(t, err, "pedir exactamente el disponible debe pasar")
}

func TestEnsureAvailable_StockInsuficiente_DetalleDelError(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	s.seed(prodA, entity.MovementTypeIN, 10)
	s.seed(prodA, entity.MovementTypeOUT, 7)

	err := inventory.EnsureAvailable(&fakeMovementRepo{s}, prodA, 4)
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr, "debe ser un InsufficientStockError tipado")
	assert.Equal(t, prodA, stockErr.ProductID)
	assert.Equal(t, int64(4), stockErr.Requested)
	assert.Equal(t, int64(3), stockErr.Available)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"el error tipado debe matchear el sentinel con errors.Is")
}

func TestEnsureAvailable_CantidadInvalida(t *testing.T) {
	s := newFakeStore()
	assert.ErrorIs(t, inventory.EnsureAvailable(&fakeMovementRepo{s}, prodA, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, inventory.EnsureAvailable(&fakeMovementRepo{s}, prodA, -5), domain.ErrInvalidInput)
}

func TestEnsureAvailable_ProductoSinMovimientos_DisponibleCero(t *testing.T) {
	s := newFakeStore()
	err := inventory.EnsureAvailable(&fakeMovementRepo{s}, prodA, 1)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(0), stockErr.Available, "sin movimientos el disponible es 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_IN_SiempreAdmisible(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	uc := newUseCase(s)

	// Entrada sobre un producto sin stock previo: nunca pasa por el guard.
	mov, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: prodA,
		Type:      entity.MovementTypeIN,
		Quantity:  15,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.Equal(t, int64(15), mov.Quantity)

	avail, err := uc.GetAvailable(context.Background(), prodA)
	require.NoError(t, err)
	assert.Equal(t, int64(15), avail.Available)
}

func TestRegisterMovement_OUT_ConStockSuficiente(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	s.seed(prodA, entity.MovementTypeIN, 10)
	uc := newUseCase(s)

	_, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: prodA,
		Type:      entity.MovementTypeOUT,
		Quantity:  4,
	})
	require.NoError(t, err)

	avail, err := uc.GetAvailable(context.Background(), prodA)
	require.NoError(t, err)
	assert.Equal(t, int64(6), avail.Available)
}

func TestRegisterMovement_OUT_SinStock_NoDejaRastro(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	s.seed(prodA, entity.MovementTypeIN, 3)
	uc := newUseCase(s)

	_, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: prodA,
		Type:      entity.MovementTypeOUT,
		Quantity:  5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El libro no cambió: el rechazo no escribe movimientos.
	assert.Len(t, s.movements, 1, "un OUT rechazado no debe aparecer en el libro")
	avail, _ := uc.GetAvailable(context.Background(), prodA)
	assert.Equal(t, int64(3), avail.Available)
}

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	uc := newUseCase(s)

	_, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: prodA,
		Type:      "TRANSFER",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_CantidadInvalida(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	uc := newUseCase(s)

	for _, qty := range []int64{0, -3} {
		_, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
			ProductID: prodA,
			Type:      entity.MovementTypeIN,
			Quantity:  qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	_, err := uc.RegisterMovement(context.Background(), testUserID, dto.RegisterMovementRequest{
		ProductID: prodA,
		Type:      entity.MovementTypeOUT,
		Quantity:  1,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas de disponible e historial
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAvailable_FoldDelLibro(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	s.seed(prodA, entity.MovementTypeIN, 10)
	s.seed(prodA, entity.MovementTypeOUT, 4)
	s.seed(prodA, entity.MovementTypeIN, 2)
	uc := newUseCase(s)

	avail, err := uc.GetAvailable(context.Background(), prodA)
	require.NoError(t, err)
	assert.Equal(t, int64(8), avail.Available, "disponible = Σ IN − Σ OUT")
}

func TestGetAvailable_ProductoInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	_, err := uc.GetAvailable(context.Background(), prodA)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAvailableBulk_SinMovimientosEnCero(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	s.addProduct(prodB, "P-002", "Azúcar", 3.20)
	s.seed(prodA, entity.MovementTypeIN, 5)
	uc := newUseCase(s)

	resp, err := uc.GetAvailableBulk(context.Background(), []string{prodA, prodB})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Available[prodA])
	assert.Equal(t, int64(0), resp.Available[prodB],
		"un producto sin movimientos debe aparecer con 0, no ausente")
}

func TestGetAvailableBulk_SinIDs(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	_, err := uc.GetAvailableBulk(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovements_HistorialDelProducto(t *testing.T) {
	s := newFakeStore()
	s.addProduct(prodA, "P-001", "Café molido", 12.50)
	s.addProduct(prodB, "P-002", "Azúcar", 3.20)
	s.seed(prodA, entity.MovementTypeIN, 10)
	s.seed(prodB, entity.MovementTypeIN, 99)
	s.seed(prodA, entity.MovementTypeOUT, 4)
	uc := newUseCase(s)

	resp, err := uc.ListMovements(context.Background(), prodA, 20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2, "solo los movimientos del producto pedido")
	assert.Equal(t, entity.MovementTypeIN, resp.Items[0].Type)
	assert.Equal(t, entity.MovementTypeOUT, resp.Items[1].Type)
}
