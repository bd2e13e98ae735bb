package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	"github.com/CompuSpace/compuspace-api/internal/application/sales"
)

// ReportHandler expone las consultas agregadas de ventas (protegido).
type ReportHandler struct {
	uc *sales.ReportsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *sales.ReportsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DailySummary godoc
// @Summary      Resumen de ventas de un día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha (YYYY-MM-DD, hoy por defecto)"
// @Success      200   {object}  dto.DailySummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) DailySummary(c *fiber.Ctx) error {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
		date = parsed
	}
	out, err := h.uc.DailySummary(c.UserContext(), GetCompanyID(c), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Statistics godoc
// @Summary      Estadísticas de ventas en un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (RFC3339)"
// @Param        to    query  string  false  "Hasta (RFC3339)"
// @Success      200   {object}  dto.StatisticsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/statistics [get]
func (h *ReportHandler) Statistics(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
	}
	out, err := h.uc.Statistics(c.UserContext(), GetCompanyID(c), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos por unidades
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days   query  int  false  "Ventana en días"     default(30)
// @Param        limit  query  int  false  "Cantidad a retornar"  default(10)
// @Success      200    {object}  dto.TopProductsResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.TopProducts(c.UserContext(), GetCompanyID(c), days, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
