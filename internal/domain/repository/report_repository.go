package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopProductRow producto con cantidad vendida acumulada en un rango.
type TopProductRow struct {
	ProductID   string
	ProductName string
	Quantity    int64
	Revenue     decimal.Decimal
}

// ReportRepository consultas de agregación de solo lectura para indicadores.
// Nunca retorna errores de negocio: sin datos simplemente devuelve ceros.
type ReportRepository interface {
	// SalesTotals cuenta ventas no eliminadas y suma su facturación en el rango.
	SalesTotals(from, to time.Time) (count int64, revenue decimal.Decimal, err error)
	// TopProducts productos más vendidos por cantidad en el rango.
	TopProducts(from, to time.Time, limit int) ([]TopProductRow, error)
}
