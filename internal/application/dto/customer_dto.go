package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// UpdateCustomerRequest entrada para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
