package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock NO vive aquí: se
// calcula plegando los movimientos del producto (ver repository.MovementRepository).
// (code) y (code, name) son únicos entre productos no eliminados.
type Product struct {
	ID        string
	Code      string // código único entre no eliminados
	Name      string
	Price     decimal.Decimal // precio de venta (2 decimales)
	OwnerID   string          // UserID del dueño del registro
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // soft delete; nunca se borra físicamente mientras existan movimientos
}
