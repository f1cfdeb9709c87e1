package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock nunca se edita
// aquí: se maneja vía movimientos del libro.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. (code) debe ser único entre no eliminados.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Price:     in.Price.Round(2),
		OwnerID:   userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre y/o precio. Las líneas de venta ya escritas conservan
// su precio congelado: el cambio de precio nunca se propaga hacia atrás.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Round(2)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete marca el producto como eliminado (soft delete). Los movimientos que
// lo referencian se conservan intactos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista productos no eliminados con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		resp.Items = append(resp.Items, *toProductResponse(p))
	}
	return resp, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Price:     p.Price,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
