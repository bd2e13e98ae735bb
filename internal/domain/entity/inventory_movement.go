package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// InventoryMovement es el registro inmutable de un cambio de stock.
// Se crea uno por cada operación que afecta el stock (stock inicial, ajuste
// manual, venta, anulación de venta, eliminación de producto) con
// cantidad = |Δstock|. Nunca se actualiza ni se elimina.
type InventoryMovement struct {
	ID        string
	CompanyID string
	ProductID string
	Type      string // IN | OUT
	Quantity  int64  // siempre > 0
	Reason    string // causa legible: "Stock inicial", "Venta #<id>", etc.
	CreatedBy string // usuario que originó el movimiento
	CreatedAt time.Time
}
