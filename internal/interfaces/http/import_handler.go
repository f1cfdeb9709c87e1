package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/catalog"
	"github.com/jhoicas/ventas-api/internal/application/dto"
)

// ImportHandler maneja la importación masiva de catálogo + stock.
type ImportHandler struct {
	uc *catalog.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *catalog.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Confirm godoc
// @Summary      Confirmar importación masiva
// @Description  Aplica el lote completo en una sola transacción: productos
// @Description  nuevos se insertan, existentes se actualizan, y cantidades > 0
// @Description  generan ingresos de inventario. Si una fila es inválida no se
// @Description  aplica nada.
// @Tags         import
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportConfirmRequest  true  "items"
// @Success      200   {object}  dto.ImportConfirmResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/import/confirm [post]
func (h *ImportHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ImportConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.ImportConfirm(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}
