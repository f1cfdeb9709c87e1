package sales

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// SaleUseCase orquesta la creación, edición y eliminación de ventas
// multilínea. Toda mutación corre dentro de una unidad de trabajo atómica:
// valida disponibilidad línea a línea (con la fila del producto bloqueada),
// persiste cabecera y líneas, y registra un movimiento OUT por línea — o los
// movimientos IN compensatorios al revertir.
type SaleUseCase struct {
	txRunner     SalesTxRunner
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner SalesTxRunner,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, customerRepo: customerRepo}
}

// GetSale obtiene una venta por ID con sus líneas y snapshots.
func (uc *SaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// ListSales lista ventas no eliminadas con paginación, más recientes primero.
func (uc *SaleUseCase) ListSales(ctx context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range list {
		resp.Items = append(resp.Items, *toSaleResponse(s))
	}
	return resp, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:           s.ID,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		UserID:       s.UserID,
		Date:         s.Date,
		Total:        s.Total(),
		Items:        make([]dto.SaleItemResponse, 0, len(s.Items)),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	for _, it := range s.Items {
		if it.DeletedAt != nil {
			continue
		}
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return resp
}
