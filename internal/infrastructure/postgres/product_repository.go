package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). La unicidad de (code) y (code, name) entre no
// eliminados la garantizan índices únicos parciales (WHERE deleted_at IS NULL);
// la violación se reporta como ErrDuplicate.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, price, owner_id, created_at, updated_at, deleted_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, code, name, price, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Price, product.OwnerID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto no eliminado por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByCode obtiene un producto no eliminado por código.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get product by code")
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Serializa toda salida de stock concurrente sobre el mismo producto: el
// guard solo es correcto si se consulta con este bloqueo tomado.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Update actualiza nombre y precio del producto. El stock jamás se toca aquí.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos no eliminados con paginación, más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.OwnerID,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete marca el producto como eliminado. Nunca hay borrado físico: los
// movimientos del libro siguen referenciando la fila.
func (r *ProductRepo) Delete(id string) error {
	query := `UPDATE products SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.OwnerID,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
