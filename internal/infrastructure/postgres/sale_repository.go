package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, customer_name, user_id, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.CustomerName, sale.UserID, sale.Date,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta con su precio congelado.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus líneas no eliminadas (carga completa).
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, customer_id, customer_name, user_id, date, created_at, updated_at, deleted_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.CustomerName, &s.UserID, &s.Date,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// GetItemByID obtiene una línea por ID (incluye eliminadas: el caller decide).
func (r *SaleRepo) GetItemByID(id string) (*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, deleted_at
		FROM sale_items WHERE id = $1`
	var it entity.SaleItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.SaleID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale item: %w", err)
	}
	return &it, nil
}

// GetItemsBySaleID devuelve las líneas no eliminadas de la venta.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, deleted_at
		FROM sale_items WHERE sale_id = $1 AND deleted_at IS NULL
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateItemQuantity actualiza solo la cantidad de la línea. El precio
// congelado jamás se modifica después de creado.
func (r *SaleRepo) UpdateItemQuantity(itemID string, quantity int64, updatedAt time.Time) error {
	query := `UPDATE sale_items SET quantity = $2 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, itemID, quantity)
	if err != nil {
		return fmt.Errorf("update sale item quantity: %w", err)
	}
	return nil
}

// Touch actualiza updated_at de la cabecera.
func (r *SaleRepo) Touch(saleID string, updatedAt time.Time) error {
	query := `UPDATE sales SET updated_at = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, saleID, updatedAt)
	if err != nil {
		return fmt.Errorf("touch sale: %w", err)
	}
	return nil
}

// DeleteItem marca la línea como eliminada (soft delete).
func (r *SaleRepo) DeleteItem(itemID string, deletedAt time.Time) error {
	query := `UPDATE sale_items SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, itemID, deletedAt)
	if err != nil {
		return fmt.Errorf("delete sale item: %w", err)
	}
	return nil
}

// Delete marca cabecera y líneas como eliminadas (soft delete).
func (r *SaleRepo) Delete(saleID string, deletedAt time.Time) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`UPDATE sale_items SET deleted_at = $2 WHERE sale_id = $1 AND deleted_at IS NULL`,
		saleID, deletedAt,
	); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	if _, err := r.q.Exec(ctx,
		`UPDATE sales SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		saleID, deletedAt,
	); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// List lista ventas no eliminadas con sus líneas, más recientes primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, customer_id, customer_name, user_id, date, created_at, updated_at, deleted_at
		FROM sales WHERE deleted_at IS NULL
		ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.CustomerName, &s.UserID, &s.Date,
			&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Carga de líneas venta por venta: los listados son cortos (paginados)
	for _, s := range list {
		items, err := r.GetItemsBySaleID(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}
