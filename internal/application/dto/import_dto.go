package dto

import "github.com/shopspring/decimal"

// ImportItemRequest una fila del lote de importación (ya parseada y validada
// en forma por el caller; el core asume entrada bien formada).
type ImportItemRequest struct {
	Code     string          `json:"code" validate:"required,min=1,max=100"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity" validate:"min=0"`
}

// ImportConfirmRequest lote completo a importar.
type ImportConfirmRequest struct {
	Items []ImportItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ImportConfirmResponse resumen del lote aplicado (todo o nada).
type ImportConfirmResponse struct {
	Inserted       int `json:"inserted"`
	Updated        int `json:"updated"`
	StockMovements int `json:"stock_movements"`
}
