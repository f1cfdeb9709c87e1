package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error // soft delete
}
