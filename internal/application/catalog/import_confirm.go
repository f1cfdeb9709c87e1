package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ImportUseCase aplica lotes de productos con stock inicial opcional.
type ImportUseCase struct {
	txRunner ImportTxRunner
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner ImportTxRunner) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner}
}

// ImportConfirm aplica el lote completo en una sola transacción (todo o nada):
//
//   - Producto ausente por code: se inserta (cuenta en Inserted).
//   - Presente con name/price distintos: se actualiza (cuenta en Updated);
//     sin cambios, no se escribe nada.
//   - quantity > 0: un movimiento IN por esa cantidad (cuenta en
//     StockMovements). El guard no se consulta: las entradas siempre son
//     admisibles.
//
// Un code repetido dentro del lote encuentra en la segunda pasada el producto
// insertado por la primera (la tx lee sus propias escrituras).
func (uc *ImportUseCase) ImportConfirm(ctx context.Context, userID string, in dto.ImportConfirmRequest) (*dto.ImportConfirmResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Code == "" || item.Name == "" || item.Price.LessThan(decimal.Zero) || item.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	result := &dto.ImportConfirmResponse{}
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		for _, item := range in.Items {
			product, err := productRepo.GetByCode(item.Code)
			if err != nil {
				return err
			}
			price := item.Price.Round(2)
			if product == nil {
				product = &entity.Product{
					ID:        uuid.New().String(),
					Code:      item.Code,
					Name:      item.Name,
					Price:     price,
					OwnerID:   userID,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := productRepo.Create(product); err != nil {
					return err
				}
				result.Inserted++
			} else if product.Name != item.Name || !product.Price.Equal(price) {
				product.Name = item.Name
				product.Price = price
				product.UpdatedAt = now
				if err := productRepo.Update(product); err != nil {
					return err
				}
				result.Updated++
			}

			if item.Quantity > 0 {
				mov := &entity.Movement{
					ID:        uuid.New().String(),
					ProductID: product.ID,
					Type:      entity.MovementTypeIN,
					Quantity:  item.Quantity,
					CreatedAt: now,
					CreatedBy: userID,
				}
				if err := movRepo.Create(mov); err != nil {
					return err
				}
				result.StockMovements++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
