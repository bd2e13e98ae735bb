package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	"github.com/CompuSpace/compuspace-api/internal/domain"
	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
	domsales "github.com/CompuSpace/compuspace-api/internal/domain/sales"
)

// SaleUseCase procesa ventas de forma transaccional: validación de stock con
// bloqueo de fila (SELECT FOR UPDATE), cálculo de totales, escritura de venta,
// líneas y movimientos, y Commit/Rollback como unidad. Una venta parcialmente
// validada nunca es visible.
type SaleUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
	receipts    ReceiptGenerator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
	receipts ReceiptGenerator,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		companyRepo: companyRepo,
		receipts:    receipts,
	}
}

// CreateSale valida el carrito contra el stock actual y, en una sola
// transacción, inserta la venta con sus líneas, descuenta stock y registra un
// movimiento OUT por línea. Cualquier fallo revierte todo: sin descuentos
// parciales de stock ni líneas huérfanas.
//
// Errores: ErrInvalidInput (carrito vacío, método de pago vacío, descuento
// fuera de [0,100]), ErrNotFound (producto inexistente en la empresa),
// ErrInvalidQuantity, ErrInsufficientStock.
func (uc *SaleUseCase) CreateSale(ctx context.Context, companyID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 || in.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	hundred := decimal.NewFromInt(100)
	if in.DiscountPercent.LessThan(decimal.Zero) || in.DiscountPercent.GreaterThan(hundred) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		UserID:        userID,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.SaleStatusActive,
		SoldAt:        now,
		CreatedAt:     now,
	}
	var lines []*entity.SaleLine

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Fase de validación: bloquear cada producto y verificar stock.
		// El lock se mantiene hasta el Commit, así dos ventas concurrentes
		// del mismo producto no pueden pasar ambas el chequeo. Cada producto
		// se bloquea una sola vez y el stock restante se descuenta ítem a
		// ítem: un carrito que repite un código no puede validar dos veces
		// contra la misma lectura.
		type pending struct {
			product  *entity.Product
			qty      int64
			newStock int64
		}
		var (
			amounts []domsales.LineAmount
			toApply []pending
		)
		locked := make(map[string]*entity.Product) // por código
		remaining := make(map[string]int64)        // stock restante por producto
		for _, item := range in.Items {
			if item.Quantity <= 0 {
				return fmt.Errorf("producto %s: %w", item.ProductCode, domain.ErrInvalidQuantity)
			}
			product, ok := locked[item.ProductCode]
			if !ok {
				p, err := productRepo.GetForUpdate(companyID, item.ProductCode)
				if err != nil {
					return err
				}
				if p == nil {
					return fmt.Errorf("producto %s: %w", item.ProductCode, domain.ErrNotFound)
				}
				locked[item.ProductCode] = p
				remaining[p.ID] = p.Stock
				product = p
			}
			if item.Quantity > remaining[product.ID] {
				return fmt.Errorf("%s (disponible: %d): %w", product.Name, remaining[product.ID], domain.ErrInsufficientStock)
			}
			remaining[product.ID] -= item.Quantity
			amounts = append(amounts, domsales.LineAmount{Quantity: item.Quantity, UnitPrice: product.Price})
			toApply = append(toApply, pending{product: product, qty: item.Quantity, newStock: remaining[product.ID]})
		}

		totals, err := domsales.ComputeTotals(amounts, in.DiscountPercent)
		if err != nil {
			return err
		}
		sale.Subtotal = totals.Subtotal
		sale.Total = totals.Total
		sale.ItemCount = totals.ItemCount

		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// Fase de aplicación: línea, descuento de stock y movimiento OUT.
		for _, p := range toApply {
			line := &entity.SaleLine{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: p.product.ID,
				Quantity:  p.qty,
				UnitPrice: p.product.Price,
				Subtotal:  domsales.LineSubtotal(p.product.Price, p.qty),
			}
			if err := saleRepo.CreateLine(line); err != nil {
				return err
			}
			lines = append(lines, line)

			if err := productRepo.UpdateStock(p.product.ID, p.newStock); err != nil {
				return err
			}
			mov := &entity.InventoryMovement{
				ID:        uuid.New().String(),
				CompanyID: companyID,
				ProductID: p.product.ID,
				Type:      entity.MovementTypeOUT,
				Quantity:  p.qty,
				Reason:    fmt.Sprintf("Venta #%s", sale.ID),
				CreatedBy: userID,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}

// ReverseSale anula una venta: restaura el stock de cada línea con un
// movimiento IN y marca la venta como REVERSED con su motivo. Todo en una
// transacción. La etiqueta del método de pago no se toca: el estado es un
// campo propio, no un prefijo.
func (uc *SaleUseCase) ReverseSale(ctx context.Context, companyID, userID, saleID, reason string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(companyID, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}
		if sale.Status == entity.SaleStatusReversed {
			return domain.ErrSaleAlreadyReversed
		}
		lines, err := saleRepo.GetLines(saleID)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, line := range lines {
			product, err := productRepo.GetByIDForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				// El producto no puede eliminarse mientras tenga líneas de
				// venta, así que esto solo ocurre con datos corruptos.
				return fmt.Errorf("producto %s de la venta %s: %w", line.ProductID, saleID, domain.ErrIntegrity)
			}
			if err := productRepo.UpdateStock(product.ID, product.Stock+line.Quantity); err != nil {
				return err
			}
			mov := &entity.InventoryMovement{
				ID:        uuid.New().String(),
				CompanyID: companyID,
				ProductID: product.ID,
				Type:      entity.MovementTypeIN,
				Quantity:  line.Quantity,
				Reason:    fmt.Sprintf("Anulación venta #%s: %s", saleID, reason),
				CreatedBy: userID,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return saleRepo.MarkReversed(saleID, reason)
	})
}

// CalculateTotals previsualiza los totales de un carrito sin escribir nada.
// Usa el precio actual de cada producto; no verifica stock.
func (uc *SaleUseCase) CalculateTotals(companyID string, in dto.CalculateSaleRequest) (*dto.SaleTotalsResponse, error) {
	var amounts []domsales.LineAmount
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByCompanyAndCode(companyID, item.ProductCode)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("producto %s: %w", item.ProductCode, domain.ErrNotFound)
		}
		amounts = append(amounts, domsales.LineAmount{Quantity: item.Quantity, UnitPrice: product.Price})
	}
	totals, err := domsales.ComputeTotals(amounts, in.DiscountPercent)
	if err != nil {
		return nil, err
	}
	return &dto.SaleTotalsResponse{
		Subtotal:        totals.Subtotal,
		DiscountPercent: in.DiscountPercent,
		DiscountValue:   totals.DiscountValue,
		Total:           totals.Total,
		ItemCount:       totals.ItemCount,
	}, nil
}

// GetSale obtiene una venta con sus líneas.
func (uc *SaleUseCase) GetSale(companyID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(companyID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	lines, err := uc.saleRepo.GetLines(saleID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}

// ListSales lista ventas de la empresa, más recientes primero. Incluye las
// anuladas: el listado es el historial completo.
func (uc *SaleUseCase) ListSales(companyID string, from, to *time.Time, limit int) (*dto.SaleListResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	list, err := uc.saleRepo.List(companyID, from, to, limit, false)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil))
	}
	return &dto.SaleListResponse{Items: items}, nil
}

// Receipt genera el comprobante PDF de una venta activa.
func (uc *SaleUseCase) Receipt(ctx context.Context, companyID, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(companyID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	lines, err := uc.saleRepo.GetLines(saleID)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	products := make(map[string]*entity.Product, len(lines))
	for _, line := range lines {
		if _, ok := products[line.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			products[line.ProductID] = product
		}
	}
	return uc.receipts.GenerateReceipt(ctx, sale, lines, company, products)
}

func toSaleResponse(s *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	out := &dto.SaleResponse{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		UserID:         s.UserID,
		PaymentMethod:  s.PaymentMethod,
		Subtotal:       s.Subtotal,
		Total:          s.Total,
		ItemCount:      s.ItemCount,
		Status:         s.Status,
		ReversalReason: s.ReversalReason,
		SoldAt:         s.SoldAt,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.SaleLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return out
}
