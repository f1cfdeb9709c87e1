package repository

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemByID(id string) (*entity.SaleItem, error)
	// GetItemsBySaleID devuelve las líneas no eliminadas de la venta.
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	UpdateItemQuantity(itemID string, quantity int64, updatedAt time.Time) error
	Touch(saleID string, updatedAt time.Time) error
	DeleteItem(itemID string, deletedAt time.Time) error // soft delete
	Delete(saleID string, deletedAt time.Time) error     // soft delete de cabecera y líneas
	List(limit, offset int) ([]*entity.Sale, error)
}
