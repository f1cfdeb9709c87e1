package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura sobre ventas y líneas.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool (no necesita tx).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesTotals cuenta ventas no eliminadas en el rango y suma su facturación
// (líneas vivas, precio congelado por cantidad). Sin ventas devuelve ceros.
func (r *ReportRepo) SalesTotals(from, to time.Time) (int64, decimal.Decimal, error) {
	query := `
		SELECT COUNT(DISTINCT s.id),
		       COALESCE(SUM(i.quantity * i.unit_price), 0)
		FROM sales s
		LEFT JOIN sale_items i ON i.sale_id = s.id AND i.deleted_at IS NULL
		WHERE s.deleted_at IS NULL AND s.date >= $1 AND s.date <= $2`
	var count int64
	var revenue decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, from, to).Scan(&count, &revenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales totals: %w", err)
	}
	return count, revenue, nil
}

// TopProducts productos más vendidos por cantidad en el rango.
func (r *ReportRepo) TopProducts(from, to time.Time, limit int) ([]repository.TopProductRow, error) {
	query := `
		SELECT i.product_id, i.product_name,
		       SUM(i.quantity), SUM(i.quantity * i.unit_price)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.deleted_at IS NULL AND i.deleted_at IS NULL
		  AND s.date >= $1 AND s.date <= $2
		GROUP BY i.product_id, i.product_name
		ORDER BY SUM(i.quantity) DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
