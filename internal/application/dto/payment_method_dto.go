package dto

import "time"

// CreatePaymentMethodRequest entrada para crear un método de pago.
type CreatePaymentMethodRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active"` // nil = true
}

// UpdatePaymentMethodRequest entrada para actualizar un método de pago.
type UpdatePaymentMethodRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// PaymentMethodResponse salida de un método de pago.
type PaymentMethodResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Active        bool      `json:"active"`
	SystemDefined bool      `json:"system_defined"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PaymentMethodListResponse lista de métodos de pago.
type PaymentMethodListResponse struct {
	Items []PaymentMethodResponse `json:"items"`
}
