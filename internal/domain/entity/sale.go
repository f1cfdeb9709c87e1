package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. CustomerName es un snapshot tomado
// al momento de la venta; ediciones posteriores del cliente no la tocan.
type Sale struct {
	ID           string
	CustomerID   string
	CustomerName string
	UserID       string
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
	Items        []*SaleItem
}

// SaleItem es una línea de venta: pertenece a exactamente una Sale.
// UnitPrice y ProductName quedan congelados al precio/nombre del momento de la
// venta; cambios posteriores del producto no los modifican.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal // fijado a 2 decimales al crear la línea
	DeletedAt   *time.Time
}

// Subtotal de la línea (Quantity * UnitPrice).
func (it *SaleItem) Subtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}

// Total suma los subtotales de las líneas no eliminadas.
func (s *Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		if it.DeletedAt == nil {
			total = total.Add(it.Subtotal())
		}
	}
	return total
}
