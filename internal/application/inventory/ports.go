package inventory

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: si fn retorna error se
// hace rollback de todo lo escrito, movimientos incluidos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
