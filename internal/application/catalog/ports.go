package catalog

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ImportTxRunner ejecuta el lote de importación dentro de una transacción.
// La firma coincide con inventory.TxRunner: el mismo runner de infraestructura
// satisface ambos puertos.
type ImportTxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
