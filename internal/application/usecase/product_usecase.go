package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	"github.com/CompuSpace/compuspace-api/internal/application/sales"
	"github.com/CompuSpace/compuspace-api/internal/domain"
	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
)

// ProductUseCase es el libro mayor de productos: todo cambio de stock, por la
// razón que sea, queda registrado con exactamente un movimiento de inventario
// en la misma transacción que el cambio del producto.
type ProductUseCase struct {
	repo     repository.ProductRepository
	movRepo  repository.InventoryMovementRepository
	txRunner sales.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	txRunner sales.TxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, movRepo: movRepo, txRunner: txRunner}
}

// Create crea un producto. Si el stock inicial es mayor a cero registra un
// movimiento IN con motivo "Stock inicial"; producto y movimiento se
// confirman o revierten juntos. Devuelve ErrDuplicate si (código, empresa) ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" || in.Price < 0 || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCompanyAndCode(companyID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		_ repository.SaleRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.Stock > 0 {
			return movRepo.Create(&entity.InventoryMovement{
				ID:        uuid.New().String(),
				CompanyID: companyID,
				ProductID: product.ID,
				Type:      entity.MovementTypeIN,
				Quantity:  product.Stock,
				Reason:    "Stock inicial",
				CreatedBy: userID,
				CreatedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, descripción y precio; si el stock cambia, registra
// el movimiento de ajuste con motivo "Ajuste manual: <antes> → <después>" y
// aplica el nuevo valor, todo en una transacción.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, userID, code string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price != nil && *in.Price < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		_ repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(companyID, code)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Stock != nil && *in.Stock != product.Stock {
			if err := uc.applyStockChange(movRepo, product, *in.Stock, "Ajuste manual", userID); err != nil {
				return err
			}
			product.Stock = *in.Stock
		}
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// AdjustStock cambia solo el stock de un producto, con la misma lógica de
// delta/movimiento de Update. Devuelve ErrNotFound si el producto no existe.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, companyID, userID, code string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.NewStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	reason := in.Reason
	if reason == "" {
		reason = "Ajuste manual"
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		_ repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(companyID, code)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.NewStock != product.Stock {
			if err := uc.applyStockChange(movRepo, product, in.NewStock, reason, userID); err != nil {
				return err
			}
			product.Stock = in.NewStock
			if err := productRepo.UpdateStock(product.ID, product.Stock); err != nil {
				return err
			}
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto. Se rechaza con ErrProductHasSales si existen
// líneas de venta que lo referencian; si aún tiene stock, registra primero el
// movimiento OUT "Eliminación de producto".
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, userID, code string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		_ repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(companyID, code)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		hasSales, err := productRepo.HasSaleLines(product.ID)
		if err != nil {
			return err
		}
		if hasSales {
			return domain.ErrProductHasSales
		}
		if product.Stock > 0 {
			mov := &entity.InventoryMovement{
				ID:        uuid.New().String(),
				CompanyID: companyID,
				ProductID: product.ID,
				Type:      entity.MovementTypeOUT,
				Quantity:  product.Stock,
				Reason:    "Eliminación de producto",
				CreatedBy: userID,
				CreatedAt: time.Now(),
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return productRepo.Delete(product.ID)
	})
}

// GetByCode obtiene un producto por código dentro de la empresa.
func (uc *ProductUseCase) GetByCode(companyID, code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCompanyAndCode(companyID, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search busca por código, nombre o descripción (substring, case-insensitive).
func (uc *ProductUseCase) Search(companyID, term string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.Search(companyID, term)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// LowStock devuelve productos con stock <= threshold (default 10), ascendente.
func (uc *ProductUseCase) LowStock(companyID string, threshold int64) ([]dto.ProductResponse, error) {
	if threshold <= 0 {
		threshold = 10
	}
	list, err := uc.repo.LowStock(companyID, threshold)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Movements devuelve el historial de movimientos de un producto.
func (uc *ProductUseCase) Movements(companyID, code string, from, to *time.Time, limit, offset int) ([]dto.MovementResponse, error) {
	product, err := uc.repo.GetByCompanyAndCode(companyID, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByProduct(product.ID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return items, nil
}

// applyStockChange registra el movimiento correspondiente a un cambio de
// stock: IN si sube, OUT si baja, cantidad = |delta|, motivo "<reason>: a → b".
func (uc *ProductUseCase) applyStockChange(
	movRepo repository.InventoryMovementRepository,
	product *entity.Product,
	newStock int64,
	reason, userID string,
) error {
	delta := newStock - product.Stock
	movType := entity.MovementTypeIN
	if delta < 0 {
		movType = entity.MovementTypeOUT
		delta = -delta
	}
	return movRepo.Create(&entity.InventoryMovement{
		ID:        uuid.New().String(),
		CompanyID: product.CompanyID,
		ProductID: product.ID,
		Type:      movType,
		Quantity:  delta,
		Reason:    fmt.Sprintf("%s: %d → %d", reason, product.Stock, newStock),
		CreatedBy: userID,
		CreatedAt: time.Now(),
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
