package entity

import "time"

// PaymentMethod es un método de pago configurable por empresa. Los métodos
// sembrados al registrar la empresa llevan SystemDefined=true y no pueden
// eliminarse.
type PaymentMethod struct {
	ID            string
	CompanyID     string
	Name          string
	Description   string
	Active        bool
	SystemDefined bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DefaultPaymentMethods son los seis métodos sembrados para cada empresa nueva.
func DefaultPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{Name: "Efectivo", Description: "Pago en dinero físico", Active: true, SystemDefined: true},
		{Name: "Tarjeta de Débito", Description: "Pago con tarjeta débito", Active: true, SystemDefined: true},
		{Name: "Tarjeta de Crédito", Description: "Pago con tarjeta crédito", Active: true, SystemDefined: true},
		{Name: "Transferencia", Description: "Transferencia bancaria", Active: true, SystemDefined: true},
		{Name: "PSE", Description: "Pagos Seguros en Línea", Active: true, SystemDefined: true},
		{Name: "Consignación", Description: "Depósito bancario", Active: true, SystemDefined: true},
	}
}
