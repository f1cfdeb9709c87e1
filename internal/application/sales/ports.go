package sales

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción que incluye los
// repos de inventario y ventas. Una venta y sus movimientos se confirman o se
// revierten juntos: nunca queda estado parcial observable.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
