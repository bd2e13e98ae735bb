package entity

import "time"

// Estados de una venta. Una venta anulada conserva su historial completo
// (líneas y movimientos); solo cambia el estado y se registra el motivo.
const (
	SaleStatusActive   = "ACTIVE"
	SaleStatusReversed = "REVERSED"
)

// Sale representa una venta. Subtotal y Total son unidades enteras de moneda;
// Total ya incluye el descuento aplicado al momento de la venta (solo se
// persiste el resultado monetario, no el porcentaje).
type Sale struct {
	ID             string
	CompanyID      string
	UserID         string
	PaymentMethod  string // etiqueta del método de pago
	Subtotal       int64
	Total          int64 // subtotal - descuento, truncado a entero
	ItemCount      int64 // suma de cantidades de todas las líneas
	Status         string // ACTIVE | REVERSED
	ReversalReason string // motivo de anulación, vacío si ACTIVE
	SoldAt         time.Time
	CreatedAt      time.Time
}

// SaleLine es la contribución de un producto a una venta. UnitPrice es el
// precio al momento de la venta (histórico, independiente de cambios
// posteriores del producto).
type SaleLine struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	UnitPrice int64 // snapshot del precio del producto
	Subtotal  int64 // UnitPrice * Quantity
}
