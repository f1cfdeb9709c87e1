package repository

import (
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas excluyen productos eliminados (soft delete).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Es el punto de serialización de todo efecto de salida de stock: dos
	// operaciones concurrentes sobre el mismo producto se ordenan aquí.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error // soft delete (deleted_at)
}
