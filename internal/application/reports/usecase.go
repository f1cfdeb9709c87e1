package reports

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ReportUseCase folds de solo lectura sobre productos + libro de movimientos.
// No muta estado y nunca retorna errores de negocio: ausencia de datos
// produce resultados vacíos o ceros.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	reportRepo  repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	reportRepo repository.ReportRepository,
) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, movRepo: movRepo, reportRepo: reportRepo}
}

// StockReport devuelve cada producto del catálogo con su disponible, calculado
// con una sola pasada de agregación sobre el libro. Sin movimientos = 0.
func (uc *ReportUseCase) StockReport(ctx context.Context, limit, offset int) (*dto.StockReportResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return &dto.StockReportResponse{Rows: []dto.StockReportRow{}}, nil
	}
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	available, err := uc.movRepo.SumByProducts(ids)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StockReportRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, dto.StockReportRow{
			ProductID: p.ID,
			Code:      p.Code,
			Name:      p.Name,
			Price:     p.Price,
			Available: available[p.ID],
		})
	}
	return &dto.StockReportResponse{Rows: rows}, nil
}

// Indicators totales de ventas y productos más vendidos en el rango.
func (uc *ReportUseCase) Indicators(ctx context.Context, from, to time.Time) (*dto.IndicatorsResponse, error) {
	count, revenue, err := uc.reportRepo.SalesTotals(from, to)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.TopProducts(from, to, 5)
	if err != nil {
		return nil, err
	}
	resp := &dto.IndicatorsResponse{
		SalesCount:  count,
		Revenue:     revenue,
		TopProducts: make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, row := range top {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			Revenue:     row.Revenue,
		})
	}
	return resp, nil
}
