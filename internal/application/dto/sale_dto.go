package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest una línea de la venta. UnitPrice nulo = precio actual del producto.
type SaleLineRequest struct {
	ProductID string           `json:"product_id" validate:"required,uuid"`
	Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest entrada para crear una venta multilínea.
// CustomerName vacío = se toma el nombre actual del cliente como snapshot.
type CreateSaleRequest struct {
	CustomerID   string            `json:"customer_id" validate:"required,uuid"`
	CustomerName string            `json:"customer_name"`
	Date         time.Time         `json:"date"`
	Lines        []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateSaleItemRequest cambio de cantidad de una línea existente.
type UpdateSaleItemRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// SaleItemResponse salida de una línea de venta.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta con sus líneas.
type SaleResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	UserID       string             `json:"user_id"`
	Date         time.Time          `json:"date"`
	Total        decimal.Decimal    `json:"total"`
	Items        []SaleItemResponse `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
