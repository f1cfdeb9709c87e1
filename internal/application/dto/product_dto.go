package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code  string          `json:"code" validate:"required,min=1,max=100"`
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto (el stock nunca se
// edita aquí: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	OwnerID   string          `json:"owner_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
