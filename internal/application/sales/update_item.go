package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// UpdateSaleItemQuantity cambia la cantidad de una línea aplicando solo el
// delta contra el libro: delta positivo pasa por el guard (con la fila del
// producto bloqueada) y registra un OUT; delta negativo registra un IN sin
// revalidar — liberar stock siempre es admisible. Si el guard rechaza, nada
// cambia.
func (uc *SaleUseCase) UpdateSaleItemQuantity(ctx context.Context, userID, itemID string, in dto.UpdateSaleItemRequest) (*dto.SaleItemResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.SaleItem
	err := uc.txRunner.RunSales(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		_ repository.CustomerRepository,
	) error {
		item, err := saleRepo.GetItemByID(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.DeletedAt != nil {
			return domain.ErrNotFound
		}

		delta := in.Quantity - item.Quantity
		now := time.Now()
		if delta == 0 {
			updated = item
			return nil
		}

		if delta > 0 {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := inventory.EnsureAvailable(movRepo, item.ProductID, delta); err != nil {
				return err
			}
		}

		if err := saleRepo.UpdateItemQuantity(itemID, in.Quantity, now); err != nil {
			return err
		}
		if err := saleRepo.Touch(item.SaleID, now); err != nil {
			return err
		}

		mov := &entity.Movement{
			ID:        uuid.New().String(),
			ProductID: item.ProductID,
			CreatedAt: now,
			CreatedBy: userID,
		}
		if delta > 0 {
			mov.Type = entity.MovementTypeOUT
			mov.Quantity = delta
		} else {
			mov.Type = entity.MovementTypeIN
			mov.Quantity = -delta
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		item.Quantity = in.Quantity
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.SaleItemResponse{
		ID:          updated.ID,
		ProductID:   updated.ProductID,
		ProductName: updated.ProductName,
		Quantity:    updated.Quantity,
		UnitPrice:   updated.UnitPrice,
		Subtotal:    updated.Subtotal(),
	}, nil
}
