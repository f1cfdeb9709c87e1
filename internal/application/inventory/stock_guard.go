package inventory

import (
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// EnsureAvailable es el control de admisión para efectos de salida (OUT):
// lee el disponible del producto dentro de la transacción activa y falla con
// InsufficientStockError si requested excede el disponible. Es un chequeo puro,
// sin efectos: el caller hace el append del movimiento.
//
// El caller debe haber bloqueado antes la fila del producto (GetForUpdate);
// de lo contrario dos operaciones concurrentes podrían pasar el chequeo con
// el mismo stock. Entradas (IN) y reducciones de cantidad nunca pasan por aquí.
func EnsureAvailable(movRepo repository.MovementRepository, productID string, requested int64) error {
	if requested <= 0 {
		return domain.ErrInvalidInput
	}
	available, err := movRepo.SumByProduct(productID)
	if err != nil {
		return err
	}
	if requested > available {
		return &domain.InsufficientStockError{
			ProductID: productID,
			Requested: requested,
			Available: available,
		}
	}
	return nil
}
