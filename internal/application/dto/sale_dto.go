package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea del carrito: producto por código y cantidad.
type SaleItemRequest struct {
	ProductCode string `json:"product_code"`
	Quantity    int64  `json:"quantity"`
}

// CreateSaleRequest entrada para procesar una venta.
type CreateSaleRequest struct {
	Items           []SaleItemRequest `json:"items"`
	PaymentMethod   string            `json:"payment_method"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"` // [0, 100]
}

// CalculateSaleRequest entrada para previsualizar totales sin crear la venta.
type CalculateSaleRequest struct {
	Items           []SaleItemRequest `json:"items"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
}

// ReverseSaleRequest entrada para anular una venta.
type ReverseSaleRequest struct {
	Reason string `json:"reason"`
}

// SaleLineResponse una línea de la venta con el precio snapshot.
type SaleLineResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID             string             `json:"id"`
	CompanyID      string             `json:"company_id"`
	UserID         string             `json:"user_id"`
	PaymentMethod  string             `json:"payment_method"`
	Subtotal       int64              `json:"subtotal"`
	Total          int64              `json:"total"`
	ItemCount      int64              `json:"item_count"`
	Status         string             `json:"status"`
	ReversalReason string             `json:"reversal_reason,omitempty"`
	SoldAt         time.Time          `json:"sold_at"`
	Lines          []SaleLineResponse `json:"lines,omitempty"`
}

// SaleListResponse lista de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}

// SaleTotalsResponse previsualización de totales (sin persistir nada).
type SaleTotalsResponse struct {
	Subtotal        int64           `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountValue   int64           `json:"discount_value"`
	Total           int64           `json:"total"`
	ItemCount       int64           `json:"item_count"`
}
