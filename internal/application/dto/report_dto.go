package dto

import "github.com/shopspring/decimal"

// StockReportRow una fila del reporte de stock: producto y su disponible.
type StockReportRow struct {
	ProductID   string          `json:"product_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Available   int64           `json:"available"`
}

// StockReportResponse reporte de stock del catálogo completo.
type StockReportResponse struct {
	Rows []StockReportRow `json:"rows"`
}

// TopProductDTO producto más vendido en el rango.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// IndicatorsResponse indicadores del dashboard para un rango de fechas.
type IndicatorsResponse struct {
	SalesCount  int64           `json:"sales_count"`
	Revenue     decimal.Decimal `json:"revenue"`
	TopProducts []TopProductDTO `json:"top_products"`
}
