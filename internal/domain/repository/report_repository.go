package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics resultado crudo de agregación de ventas en un rango.
// Lo produce la DB; el use case lo convierte en DTO.
type SalesMetrics struct {
	SaleCount int64
	Revenue   int64           // suma de totales
	Items     int64           // suma de cantidades vendidas
	Average   decimal.Decimal // promedio por venta (NUMERIC de la DB)
	Max       int64
	Min       int64
}

// MethodBreakdown ventas agrupadas por método de pago.
type MethodBreakdown struct {
	Method string
	Count  int64
	Total  int64
}

// DayBreakdown ventas agrupadas por día calendario (formato YYYY-MM-DD).
type DayBreakdown struct {
	Day   string
	Count int64
	Total int64
}

// TopProductResult producto con su cantidad vendida en el rango.
type TopProductResult struct {
	ProductID string
	Code      string
	Name      string
	UnitsSold int64
}

// ReportRepository define las consultas de lectura para reportes de ventas.
// Todas excluyen ventas con estado REVERSED mediante filtro de estado.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// GetSalesMetrics agrega conteo, ingresos, items, promedio, máximo y mínimo
	// de las ventas activas del rango. from/to en nil no acotan ese extremo.
	GetSalesMetrics(ctx context.Context, companyID string, from, to *time.Time) (SalesMetrics, error)

	// GetMethodBreakdown agrupa por método de pago, ordenado por frecuencia
	// descendente; limit <= 0 no limita.
	GetMethodBreakdown(ctx context.Context, companyID string, from, to *time.Time, limit int) ([]MethodBreakdown, error)

	// GetDayBreakdown agrupa por día calendario, ascendente.
	GetDayBreakdown(ctx context.Context, companyID string, from, to *time.Time) ([]DayBreakdown, error)

	// GetTopProducts une líneas de venta con ventas activas desde `since`,
	// agrupa por producto y ordena por cantidad vendida descendente.
	GetTopProducts(ctx context.Context, companyID string, since time.Time, limit int) ([]TopProductResult, error)
}
