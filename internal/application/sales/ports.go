package sales

import (
	"context"

	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: todo lo que la función
// escriba se confirma junto o se revierte junto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de una venta.
// products mapea ProductID -> Product para resolver los nombres de las líneas.
type ReceiptGenerator interface {
	GenerateReceipt(
		ctx context.Context,
		sale *entity.Sale,
		lines []*entity.SaleLine,
		company *entity.Company,
		products map[string]*entity.Product,
	) ([]byte, error)
}
