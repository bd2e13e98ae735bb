package dto

import "github.com/shopspring/decimal"

// MethodBreakdownDTO ventas por método de pago.
type MethodBreakdownDTO struct {
	Method string `json:"method"`
	Count  int64  `json:"count"`
	Total  int64  `json:"total"`
}

// DayBreakdownDTO ventas por día calendario.
type DayBreakdownDTO struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
	Total int64  `json:"total"`
}

// DailySummaryResponse resumen de ventas de un día.
type DailySummaryResponse struct {
	Date        string               `json:"date"` // YYYY-MM-DD
	SaleCount   int64                `json:"sale_count"`
	Revenue     int64                `json:"revenue"`
	ItemsSold   int64                `json:"items_sold"`
	AverageSale decimal.Decimal      `json:"average_sale"`
	TopMethods  []MethodBreakdownDTO `json:"top_methods"`   // top-3 por frecuencia
	RecentSales []SaleResponse       `json:"recent_sales"` // 5 más recientes
}

// StatisticsResponse estadísticas de ventas en un rango.
type StatisticsResponse struct {
	SaleCount   int64                `json:"sale_count"`
	Revenue     int64                `json:"revenue"`
	AverageSale decimal.Decimal      `json:"average_sale"`
	MaxSale     int64                `json:"max_sale"`
	MinSale     int64                `json:"min_sale"`
	ItemsSold   int64                `json:"items_sold"`
	ByMethod    []MethodBreakdownDTO `json:"by_method"`
	ByDay       []DayBreakdownDTO    `json:"by_day"`
}

// TopProductDTO producto con unidades vendidas en el rango.
type TopProductDTO struct {
	ProductID string `json:"product_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	UnitsSold int64  `json:"units_sold"`
}

// TopProductsResponse productos más vendidos.
type TopProductsResponse struct {
	Days  int             `json:"days"`
	Items []TopProductDTO `json:"items"`
}
