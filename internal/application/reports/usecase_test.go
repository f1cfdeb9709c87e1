package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/reports"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// Fakes mínimos: el reporte solo necesita List, SumByProducts y las dos
// agregaciones de ventas.

type stubProductRepo struct{ products []*entity.Product }

func (r *stubProductRepo) Create(*entity.Product) error                 { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) GetByCode(string) (*entity.Product, error)    { return nil, nil }
func (r *stubProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                 { return nil }
func (r *stubProductRepo) Delete(string) error                          { return nil }
func (r *stubProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.products, nil
}

type stubMovementRepo struct{ sums map[string]int64 }

func (r *stubMovementRepo) Create(*entity.Movement) error          { return nil }
func (r *stubMovementRepo) SumByProduct(string) (int64, error)     { return 0, nil }
func (r *stubMovementRepo) ListByProduct(string, int, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *stubMovementRepo) SumByProducts(ids []string) (map[string]int64, error) {
	out := make(map[string]int64, len(ids))
	for _, id := range ids {
		out[id] = r.sums[id] // ausente = 0
	}
	return out, nil
}

type stubReportRepo struct {
	count   int64
	revenue decimal.Decimal
	top     []repository.TopProductRow
}

func (r *stubReportRepo) SalesTotals(from, to time.Time) (int64, decimal.Decimal, error) {
	return r.count, r.revenue, nil
}
func (r *stubReportRepo) TopProducts(from, to time.Time, limit int) ([]repository.TopProductRow, error) {
	if limit < len(r.top) {
		return r.top[:limit], nil
	}
	return r.top, nil
}

func TestStockReport_DisponiblePorProducto(t *testing.T) {
	products := []*entity.Product{
		{ID: "p1", Code: "P-001", Name: "Café molido", Price: decimal.NewFromFloat(12.50)},
		{ID: "p2", Code: "P-002", Name: "Azúcar", Price: decimal.NewFromFloat(3.20)},
	}
	uc := reports.NewReportUseCase(
		&stubProductRepo{products: products},
		&stubMovementRepo{sums: map[string]int64{"p1": 8}},
		&stubReportRepo{},
	)

	resp, err := uc.StockReport(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, int64(8), resp.Rows[0].Available)
	assert.Equal(t, int64(0), resp.Rows[1].Available,
		"producto sin movimientos aparece con 0, no desaparece del reporte")
}

func TestStockReport_CatalogoVacio(t *testing.T) {
	uc := reports.NewReportUseCase(&stubProductRepo{}, &stubMovementRepo{}, &stubReportRepo{})

	resp, err := uc.StockReport(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
}

func TestIndicators_TotalesYTopProductos(t *testing.T) {
	uc := reports.NewReportUseCase(&stubProductRepo{}, &stubMovementRepo{}, &stubReportRepo{
		count:   12,
		revenue: decimal.NewFromFloat(1540.75),
		top: []repository.TopProductRow{
			{ProductID: "p1", ProductName: "Café molido", Quantity: 40, Revenue: decimal.NewFromFloat(500)},
		},
	})

	resp, err := uc.Indicators(context.Background(), time.Now().AddDate(0, 0, -30), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.SalesCount)
	assert.True(t, resp.Revenue.Equal(decimal.NewFromFloat(1540.75)))
	require.Len(t, resp.TopProducts, 1)
	assert.Equal(t, "Café molido", resp.TopProducts[0].ProductName)
}
