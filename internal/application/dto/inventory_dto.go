package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento directo de inventario.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse historial paginado de movimientos de un producto.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// AvailableResponse stock disponible de un producto.
type AvailableResponse struct {
	ProductID string `json:"product_id"`
	Available int64  `json:"available"`
}

// AvailableBulkRequest consulta de disponible para varios productos.
type AvailableBulkRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1,dive,uuid"`
}

// AvailableBulkResponse disponible por producto; sin movimientos = 0.
type AvailableBulkResponse struct {
	Available map[string]int64 `json:"available"`
}
