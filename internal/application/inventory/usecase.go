package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// MovementUseCase registra movimientos del libro de inventario de forma
// transaccional (IN, OUT) con bloqueo de fila del producto para las salidas,
// y expone las consultas de disponible e historial.
type MovementUseCase struct {
	txRunner    TxRunner
	movRepo     repository.MovementRepository // atado al pool, solo lecturas
	productRepo repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movRepo: movRepo, productRepo: productRepo}
}

// RegisterMovement inicia una transacción y registra un movimiento directo.
// Para OUT bloquea la fila del producto (SELECT FOR UPDATE) y consulta el
// guard antes del append; para IN el append siempre es admisible.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		CreatedAt: now,
		CreatedBy: userID,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if in.Type == entity.MovementTypeOUT {
			// Bloquea la fila del producto: serializa con cualquier otra
			// salida concurrente sobre el mismo producto.
			product, err := productRepo.GetForUpdate(in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := EnsureAvailable(movRepo, in.ProductID, in.Quantity); err != nil {
				return err
			}
		} else {
			product, err := productRepo.GetByID(in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// GetAvailable devuelve el stock disponible de un producto (Σ IN − Σ OUT).
func (uc *MovementUseCase) GetAvailable(ctx context.Context, productID string) (*dto.AvailableResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	available, err := uc.movRepo.SumByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableResponse{ProductID: productID, Available: available}, nil
}

// GetAvailableBulk disponible de varios productos en una sola pasada.
// Productos sin movimientos aparecen con 0.
func (uc *MovementUseCase) GetAvailableBulk(ctx context.Context, productIDs []string) (*dto.AvailableBulkResponse, error) {
	if len(productIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	available, err := uc.movRepo.SumByProducts(productIDs)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableBulkResponse{Available: available}, nil
}

// ListMovements historial de movimientos de un producto, ascendente por fecha.
func (uc *MovementUseCase) ListMovements(ctx context.Context, productID string, limit, offset int) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, m := range list {
		resp.Items = append(resp.Items, *toMovementResponse(m))
	}
	return resp, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
	}
}
