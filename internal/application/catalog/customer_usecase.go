package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		City:      in.City,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza un cliente. Las ventas ya creadas conservan el snapshot
// del nombre tomado al momento de la venta.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.City != nil {
		customer.City = *in.City
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete marca el cliente como eliminado (soft delete).
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista clientes no eliminados con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.CustomerListResponse{
		Items: make([]dto.CustomerResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, c := range list {
		resp.Items = append(resp.Items, *toCustomerResponse(c))
	}
	return resp, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		City:      c.City,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
