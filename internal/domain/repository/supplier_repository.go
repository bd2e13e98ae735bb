package repository

import "github.com/CompuSpace/compuspace-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(companyID, id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error)
}
