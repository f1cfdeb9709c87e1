package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/reports"
)

// ReportHandler maneja los reportes e indicadores.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stock godoc
// @Summary      Reporte de stock del catálogo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máx. productos (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.StockReportResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	resp, err := h.uc.StockReport(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Indicators godoc
// @Summary      Indicadores de ventas por rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (RFC3339 o YYYY-MM-DD; default: hace 30 días)"
// @Param        to    query  string  false  "Fecha final (RFC3339 o YYYY-MM-DD; default: ahora)"
// @Success      200  {object}  dto.IndicatorsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/indicators [get]
func (h *ReportHandler) Indicators(c *fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'from' inválida"})
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'to' inválida"})
		}
		to = parsed
	}

	resp, err := h.uc.Indicators(c.Context(), from, to)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
