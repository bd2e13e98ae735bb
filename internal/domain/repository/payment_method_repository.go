package repository

import "github.com/CompuSpace/compuspace-api/internal/domain/entity"

// PaymentMethodRepository define el puerto de persistencia para métodos de
// pago por empresa.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(companyID, id string) (*entity.PaymentMethod, error)
	Update(method *entity.PaymentMethod) error
	Delete(id string) error
	// List devuelve los métodos de la empresa; si onlyActive, filtra inactivos.
	List(companyID string, onlyActive bool) ([]*entity.PaymentMethod, error)
}
