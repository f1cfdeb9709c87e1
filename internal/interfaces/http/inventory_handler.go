package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario.
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Append de un movimiento IN u OUT al libro. Las salidas validan
// @Description  disponible bajo bloqueo de fila; los ingresos siempre entran.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, type (IN|OUT), quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RegisterMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// GetAvailable godoc
// @Summary      Stock disponible de un producto
// @Description  Disponible = Σ IN − Σ OUT sobre el libro de movimientos.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product ID (UUID)"
// @Success      200  {object}  dto.AvailableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *InventoryHandler) GetAvailable(c *fiber.Ctx) error {
	resp, err := h.uc.GetAvailable(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// GetAvailableBulk godoc
// @Summary      Stock disponible de varios productos
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AvailableBulkRequest  true  "product_ids"
// @Success      200   {object}  dto.AvailableBulkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [post]
func (h *InventoryHandler) GetAvailableBulk(c *fiber.Ctx) error {
	var in dto.AvailableBulkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.GetAvailableBulk(c.Context(), in.ProductIDs)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// ListMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Product ID (UUID)"
// @Param        limit   query  int     false  "Máx. resultados (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	resp, err := h.uc.ListMovements(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}
