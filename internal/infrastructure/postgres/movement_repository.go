package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla movements es append-only: este adaptador
// no expone UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. La cantidad debe ser un entero positivo.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, type, quantity, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// SumByProduct calcula el disponible del producto: Σ IN − Σ OUT.
// Dentro de una tx ve los movimientos escritos por la misma tx.
func (r *MovementRepo) SumByProduct(productID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'IN' THEN quantity ELSE -quantity END), 0)
		FROM movements WHERE product_id = $1`
	var sum int64
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}

// SumByProducts calcula el disponible de varios productos en una sola pasada
// (GROUP BY). Productos sin movimientos aparecen en el mapa con 0.
func (r *MovementRepo) SumByProducts(productIDs []string) (map[string]int64, error) {
	result := make(map[string]int64, len(productIDs))
	for _, id := range productIDs {
		result[id] = 0
	}
	if len(productIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT product_id,
		       COALESCE(SUM(CASE WHEN type = 'IN' THEN quantity ELSE -quantity END), 0)
		FROM movements WHERE product_id = ANY($1)
		GROUP BY product_id`
	rows, err := r.q.Query(context.Background(), query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("sum movements bulk: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var sum int64
		if err := rows.Scan(&id, &sum); err != nil {
			return nil, fmt.Errorf("scan sum: %w", err)
		}
		result[id] = sum
	}
	return result, rows.Err()
}

// ListByProduct lista movimientos de un producto ordenados por fecha de
// creación ascendente, con paginación (historial/auditoría).
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, type, quantity, created_at, created_by
		FROM movements WHERE product_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
