package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// RemoveSaleItem revierte una línea: registra un IN compensatorio por su
// cantidad y la marca como eliminada. La reversa nunca falla por stock —
// devolver unidades al libro siempre es admisible, así que no pasa por el guard.
func (uc *SaleUseCase) RemoveSaleItem(ctx context.Context, userID, itemID string) error {
	return uc.txRunner.RunSales(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
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
		now := time.Now()
		if err := appendReversal(movRepo, item, userID, now); err != nil {
			return err
		}
		if err := saleRepo.DeleteItem(itemID, now); err != nil {
			return err
		}
		return saleRepo.Touch(item.SaleID, now)
	})
}

// RemoveSale revierte la venta completa: un IN compensatorio por cada línea
// viva y soft delete de cabecera y líneas, todo en la misma transacción.
func (uc *SaleUseCase) RemoveSale(ctx context.Context, userID, saleID string) error {
	return uc.txRunner.RunSales(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
		saleRepo repository.SaleRepository,
		_ repository.CustomerRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil || sale.DeletedAt != nil {
			return domain.ErrNotFound
		}
		items, err := saleRepo.GetItemsBySaleID(saleID)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, item := range items {
			if err := appendReversal(movRepo, item, userID, now); err != nil {
				return err
			}
		}
		return saleRepo.Delete(saleID, now)
	})
}

// appendReversal registra el IN compensatorio de una línea (invariante: una
// reversa por línea, por la misma cantidad del OUT original).
func appendReversal(movRepo repository.MovementRepository, item *entity.SaleItem, userID string, now time.Time) error {
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: item.ProductID,
		Type:      entity.MovementTypeIN,
		Quantity:  item.Quantity,
		CreatedAt: now,
		CreatedBy: userID,
	}
	return movRepo.Create(mov)
}
