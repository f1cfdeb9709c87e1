package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ventas-api/internal/application/catalog"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// Ensure TxRunner implements every tx port of the application layer.
var (
	_ inventory.TxRunner     = (*TxRunner)(nil)
	_ catalog.ImportTxRunner = (*TxRunner)(nil)
	_ sales.SalesTxRunner    = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los repos
// que recibe el callback están atados a la tx: sus lecturas ven las escrituras
// previas del mismo callback (read-your-writes).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de inventario atados a la
// tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(movRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSales inicia una transacción con repos de inventario y ventas (para el
// orquestador de ventas).
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	productRepo := NewProductRepository(tx)
	saleRepo := NewSaleRepository(tx)
	customerRepo := NewCustomerRepository(tx)

	if err := fn(movRepo, productRepo, saleRepo, customerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
