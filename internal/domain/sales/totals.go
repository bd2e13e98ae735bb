package sales

import (
	"github.com/shopspring/decimal"

	"github.com/CompuSpace/compuspace-api/internal/domain"
)

// Totals es el resultado monetario de una venta antes de persistirla.
type Totals struct {
	Subtotal      int64 // suma de subtotales de línea
	DiscountValue int64 // Subtotal - Total
	Total         int64 // subtotal con descuento, truncado a entero
	ItemCount     int64 // suma de cantidades
}

// LineAmount es la parte monetaria de una línea ya valorizada.
type LineAmount struct {
	Quantity  int64
	UnitPrice int64
}

// ComputeTotals calcula los totales de una venta (servicio de dominio).
// Total = Subtotal * (100 - descuento) / 100, truncado hacia cero: la fracción
// de moneda se descarta, igual que en el sistema original (ej. 999 al 33% de
// descuento da 669, no 669.33 ni 670).
// Devuelve ErrInvalidInput si el descuento está fuera de [0, 100] y
// ErrInvalidQuantity si alguna línea tiene cantidad <= 0.
func ComputeTotals(lines []LineAmount, discountPercent decimal.Decimal) (Totals, error) {
	hundred := decimal.NewFromInt(100)
	if discountPercent.LessThan(decimal.Zero) || discountPercent.GreaterThan(hundred) {
		return Totals{}, domain.ErrInvalidInput
	}

	var t Totals
	for _, l := range lines {
		if l.Quantity <= 0 {
			return Totals{}, domain.ErrInvalidQuantity
		}
		t.Subtotal += l.UnitPrice * l.Quantity
		t.ItemCount += l.Quantity
	}

	total := decimal.NewFromInt(t.Subtotal).
		Mul(hundred.Sub(discountPercent)).
		Div(hundred)
	t.Total = total.IntPart() // truncamiento hacia cero
	t.DiscountValue = t.Subtotal - t.Total
	return t, nil
}

// LineSubtotal valoriza una línea individual: precio unitario por cantidad.
func LineSubtotal(unitPrice, quantity int64) int64 {
	return unitPrice * quantity
}
