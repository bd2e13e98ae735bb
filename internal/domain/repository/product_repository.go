package repository

import "github.com/CompuSpace/compuspace-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndCode(companyID, code string) (*entity.Product, error)
	// GetForUpdate y GetByIDForUpdate bloquean la fila del producto
	// (SELECT FOR UPDATE). Solo tienen sentido dentro de una transacción; son
	// la barrera contra ventas concurrentes sobre el mismo producto.
	GetForUpdate(companyID, code string) (*entity.Product, error)
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int64) error
	Delete(id string) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	// Search busca por código, nombre o descripción (substring, sin distinguir
	// mayúsculas), ordenado por nombre.
	Search(companyID, term string) ([]*entity.Product, error)
	// LowStock devuelve productos con stock <= threshold, ascendente por stock.
	LowStock(companyID string, threshold int64) ([]*entity.Product, error)
	// HasSaleLines indica si existen líneas de venta que referencian el producto.
	HasSaleLines(productID string) (bool, error)
}
