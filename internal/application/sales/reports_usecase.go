package sales

import (
	"context"
	"time"

	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
)

// ReportsUseCase agrega ventas para dashboards. Solo lectura: todo deriva de
// Sale/SaleLine ya escritos por el motor de ventas. Las ventas anuladas se
// excluyen por filtro de estado en las consultas.
type ReportsUseCase struct {
	reportRepo repository.ReportRepository
	saleRepo   repository.SaleRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(reportRepo repository.ReportRepository, saleRepo repository.SaleRepository) *ReportsUseCase {
	return &ReportsUseCase{reportRepo: reportRepo, saleRepo: saleRepo}
}

// DailySummary resume las ventas de un día: conteo, ingresos, items, promedio,
// top-3 métodos de pago por frecuencia y las 5 ventas más recientes.
func (uc *ReportsUseCase) DailySummary(ctx context.Context, companyID string, date time.Time) (*dto.DailySummaryResponse, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	metrics, err := uc.reportRepo.GetSalesMetrics(ctx, companyID, &dayStart, &dayEnd)
	if err != nil {
		return nil, err
	}
	methods, err := uc.reportRepo.GetMethodBreakdown(ctx, companyID, &dayStart, &dayEnd, 3)
	if err != nil {
		return nil, err
	}
	recent, err := uc.saleRepo.List(companyID, &dayStart, &dayEnd, 5, true)
	if err != nil {
		return nil, err
	}

	out := &dto.DailySummaryResponse{
		Date:        dayStart.Format("2006-01-02"),
		SaleCount:   metrics.SaleCount,
		Revenue:     metrics.Revenue,
		ItemsSold:   metrics.Items,
		AverageSale: metrics.Average,
		TopMethods:  toMethodDTOs(methods),
	}
	for _, s := range recent {
		out.RecentSales = append(out.RecentSales, *toSaleResponse(s, nil))
	}
	return out, nil
}

// Statistics devuelve estadísticas de ventas en un rango opcional: conteo,
// ingresos (suma/promedio/máximo/mínimo), desglose por método de pago y por
// día calendario, y total de items vendidos.
func (uc *ReportsUseCase) Statistics(ctx context.Context, companyID string, from, to *time.Time) (*dto.StatisticsResponse, error) {
	metrics, err := uc.reportRepo.GetSalesMetrics(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	methods, err := uc.reportRepo.GetMethodBreakdown(ctx, companyID, from, to, 0)
	if err != nil {
		return nil, err
	}
	days, err := uc.reportRepo.GetDayBreakdown(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	out := &dto.StatisticsResponse{
		SaleCount:   metrics.SaleCount,
		Revenue:     metrics.Revenue,
		AverageSale: metrics.Average,
		MaxSale:     metrics.Max,
		MinSale:     metrics.Min,
		ItemsSold:   metrics.Items,
		ByMethod:    toMethodDTOs(methods),
	}
	for _, d := range days {
		out.ByDay = append(out.ByDay, dto.DayBreakdownDTO{Day: d.Day, Count: d.Count, Total: d.Total})
	}
	return out, nil
}

// TopProducts devuelve los productos más vendidos en los últimos `days` días.
func (uc *ReportsUseCase) TopProducts(ctx context.Context, companyID string, days, limit int) (*dto.TopProductsResponse, error) {
	if days <= 0 {
		days = 30
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	since := time.Now().AddDate(0, 0, -days)
	results, err := uc.reportRepo.GetTopProducts(ctx, companyID, since, limit)
	if err != nil {
		return nil, err
	}
	out := &dto.TopProductsResponse{Days: days}
	for _, r := range results {
		out.Items = append(out.Items, dto.TopProductDTO{
			ProductID: r.ProductID,
			Code:      r.Code,
			Name:      r.Name,
			UnitsSold: r.UnitsSold,
		})
	}
	return out, nil
}

func toMethodDTOs(in []repository.MethodBreakdown) []dto.MethodBreakdownDTO {
	out := make([]dto.MethodBreakdownDTO, 0, len(in))
	for _, m := range in {
		out = append(out, dto.MethodBreakdownDTO{Method: m.Method, Count: m.Count, Total: m.Total})
	}
	return out
}
