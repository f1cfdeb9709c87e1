package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// SumByProduct devuelve el stock disponible: Σ IN − Σ OUT del producto.
	// Dentro de una transacción ve los movimientos escritos por la misma tx.
	SumByProduct(productID string) (int64, error)
	// SumByProducts calcula el disponible de varios productos en una sola
	// pasada (GROUP BY). Productos sin movimientos aparecen con 0.
	SumByProducts(productIDs []string) (map[string]int64, error)
	// ListByProduct lista movimientos de un producto ordenados por fecha de
	// creación ascendente (solo auditoría/historial, no es el camino caliente).
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
}
