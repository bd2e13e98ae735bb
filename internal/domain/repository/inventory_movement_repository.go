package repository

import (
	"time"

	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para movimientos
// de inventario. Solo inserción y lectura: los movimientos son inmutables.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
}
