package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// CreateSale crea una venta multilínea en una sola transacción:
//
//  1. Valida cada línea en el orden recibido: resuelve el producto con la fila
//     bloqueada (SELECT FOR UPDATE) y consulta el guard de stock. Si cualquier
//     línea falla, se revierte todo: ni venta parcial ni movimientos sueltos.
//  2. Persiste la cabecera y cada línea con su precio congelado
//     (unit_price de la línea, o el precio actual del producto, a 2 decimales).
//  3. Registra un movimiento OUT por línea.
//
// Devuelve la venta completa con líneas y snapshots.
func (uc *SaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if line.UnitPrice != nil && line.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	// Cliente (lectura fuera de la tx) y snapshot de su nombre
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customerName := in.CustomerName
	if customerName == "" {
		customerName = customer.Name
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	sale := &entity.Sale{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		CustomerName: customerName,
		UserID:       userID,
		Date:         date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunSales(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		_ repository.CustomerRepository,
	) error {
		// 1) Validar todas las líneas antes de escribir nada. Un producto
		// puede repetirse en varias líneas: el guard se consulta contra la
		// cantidad acumulada, no la de cada línea por separado.
		products := make(map[string]*entity.Product)
		requested := make(map[string]int64)
		for _, line := range in.Lines {
			if _, ok := products[line.ProductID]; !ok {
				product, err := productRepo.GetForUpdate(line.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				products[line.ProductID] = product
			}
			requested[line.ProductID] += line.Quantity
			if err := inventory.EnsureAvailable(movRepo, line.ProductID, requested[line.ProductID]); err != nil {
				return err
			}
		}

		// 2) Cabecera
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// 3) Líneas + un movimiento OUT por línea, en el orden recibido
		for _, line := range in.Lines {
			product := products[line.ProductID]
			unitPrice := product.Price
			if line.UnitPrice != nil {
				unitPrice = *line.UnitPrice
			}
			item := &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   line.ProductID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   unitPrice.Round(2),
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			sale.Items = append(sale.Items, item)

			mov := &entity.Movement{
				ID:        uuid.New().String(),
				ProductID: line.ProductID,
				Type:      entity.MovementTypeOUT,
				Quantity:  line.Quantity,
				CreatedAt: now,
				CreatedBy: userID,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}
