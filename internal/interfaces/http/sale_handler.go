package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear venta multilínea
// @Description  Crea la venta y registra una salida de inventario por línea en
// @Description  una sola transacción. Si alguna línea no tiene stock suficiente
// @Description  la venta completa se rechaza con 409.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "customer_id, lines"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.CreateSale(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Sale ID (UUID)"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(sale)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máx. resultados (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListSales(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Anular venta
// @Description  Revierte el inventario de cada línea viva (movimientos IN) y
// @Description  marca la venta y sus líneas como eliminadas.
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "Sale ID (UUID)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.RemoveSale(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateItem godoc
// @Summary      Cambiar cantidad de una línea de venta
// @Description  Ajusta el inventario por el delta: aumentos validan disponible,
// @Description  reducciones devuelven stock sin validación.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Sale item ID (UUID)"
// @Param        body  body  dto.UpdateSaleItemRequest  true  "quantity"
// @Success      200   {object}  dto.SaleItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/sales/items/{id} [patch]
func (h *SaleHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateSaleItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.UpdateSaleItemQuantity(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(item)
}

// DeleteItem godoc
// @Summary      Eliminar una línea de venta
// @Description  Revierte el inventario de la línea (movimiento IN) y la marca
// @Description  como eliminada.
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "Sale item ID (UUID)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/items/{id} [delete]
func (h *SaleHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveSaleItem(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
