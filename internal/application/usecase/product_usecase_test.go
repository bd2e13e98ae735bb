package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	"github.com/CompuSpace/compuspace-api/internal/application/usecase"
	"github.com/CompuSpace/compuspace-api/internal/domain"
	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El memTxRunner no necesita rollback: estos tests cubren
// la contabilidad del libro mayor (cada cambio de stock deja exactamente un
// movimiento), no la atomicidad, que se prueba en el motor de ventas.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products  map[string]*entity.Product
	movements []*entity.InventoryMovement
	lines     []*entity.SaleLine
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]*entity.Product)}
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	c := *p
	r.store.products[p.ID] = &c
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *memProductRepo) GetByCompanyAndCode(companyID, code string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.CompanyID == companyID && p.Code == code {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(companyID, code string) (*entity.Product, error) {
	return r.GetByCompanyAndCode(companyID, code)
}

func (r *memProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	c := *p
	r.store.products[p.ID] = &c
	return nil
}

func (r *memProductRepo) UpdateStock(productID string, stock int64) error {
	p, ok := r.store.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

func (r *memProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.CompanyID == companyID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memProductRepo) Search(companyID, term string) ([]*entity.Product, error) {
	term = strings.ToLower(term)
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.CompanyID != companyID {
			continue
		}
		if strings.Contains(strings.ToLower(p.Code), term) ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memProductRepo) LowStock(companyID string, threshold int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.CompanyID == companyID && p.Stock <= threshold {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memProductRepo) HasSaleLines(productID string) (bool, error) {
	for _, l := range r.store.lines {
		if l.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(m *entity.InventoryMovement) error {
	c := *m
	r.store.movements = append(r.store.movements, &c)
	return nil
}

func (r *memMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.store.movements {
		if m.CompanyID == companyID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

type memTxRunner struct{ store *memStore }

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(&memProductRepo{tx.store}, &memMovementRepo{tx.store}, nil)
}

const (
	companyA = "empresa-a"
	adminID  = "admin-1"
)

func buildProductUseCase(store *memStore) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(
		&memProductRepo{store},
		&memMovementRepo{store},
		&memTxRunner{store},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// TestCreateProduct_StockInicialGeneraMovimiento: crear con stock > 0 deja un
// movimiento IN "Stock inicial" con la cantidad completa.
func TestCreateProduct_StockInicialGeneraMovimiento(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	resp, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code:  "TEC-001",
		Name:  "Teclado mecánico",
		Price: 185000,
		Stock: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.Stock)

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.Equal(t, int64(12), mov.Quantity)
	assert.Equal(t, "Stock inicial", mov.Reason)
	assert.Equal(t, adminID, mov.CreatedBy)
}

// TestCreateProduct_StockCeroSinMovimiento: con stock 0 no hay nada que
// registrar en el historial.
func TestCreateProduct_StockCeroSinMovimiento(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-002", Name: "Mouse", Price: 45000, Stock: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, store.movements, "stock inicial cero no genera movimiento")
}

func TestCreateProduct_CodigoDuplicadoEnLaEmpresa(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 1,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Otro teclado", Price: 200, Stock: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestCreateProduct_MismoCodigoEnOtraEmpresa: el código es único por empresa,
// no global.
func TestCreateProduct_MismoCodigoEnOtraEmpresa(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 1,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "empresa-b", adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 1,
	})
	assert.NoError(t, err, "el mismo código en otra empresa es válido")
}

func TestCreateProduct_EntradaInvalida(t *testing.T) {
	uc := buildProductUseCase(newMemStore())
	casos := []dto.CreateProductRequest{
		{Code: "", Name: "Sin código", Price: 100, Stock: 1},
		{Code: "X", Name: "", Price: 100, Stock: 1},
		{Code: "X", Name: "Precio negativo", Price: -1, Stock: 1},
		{Code: "X", Name: "Stock negativo", Price: 100, Stock: -1},
	}
	for _, in := range casos {
		_, err := uc.Create(context.Background(), companyA, adminID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v debe rechazarse", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

// TestAdjustStock_SubidaYBajada verifica dirección y cantidad del movimiento:
// subir genera IN con el delta, bajar genera OUT con |delta|, y el motivo lleva
// el formato "motivo: antes → después".
func TestAdjustStock_SubidaYBajada(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 10,
	})
	require.NoError(t, err)
	store.movements = nil // descartar el movimiento de stock inicial

	_, err = uc.AdjustStock(context.Background(), companyA, adminID, "TEC-001", dto.AdjustStockRequest{
		NewStock: 25, Reason: "Compra a proveedor",
	})
	require.NoError(t, err)

	_, err = uc.AdjustStock(context.Background(), companyA, adminID, "TEC-001", dto.AdjustStockRequest{
		NewStock: 20, Reason: "Unidades dañadas",
	})
	require.NoError(t, err)

	require.Len(t, store.movements, 2)

	subida := store.movements[0]
	assert.Equal(t, entity.MovementTypeIN, subida.Type)
	assert.Equal(t, int64(15), subida.Quantity, "10 → 25 es un IN de 15")
	assert.Equal(t, "Compra a proveedor: 10 → 25", subida.Reason)

	bajada := store.movements[1]
	assert.Equal(t, entity.MovementTypeOUT, bajada.Type)
	assert.Equal(t, int64(5), bajada.Quantity, "25 → 20 es un OUT de 5")
	assert.Equal(t, "Unidades dañadas: 25 → 20", bajada.Reason)

	got, err := uc.GetByCode(companyA, "TEC-001")
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.Stock)
}

// TestAdjustStock_SinCambioNoGeneraMovimiento: ajustar al mismo valor es un
// no-op en el historial.
func TestAdjustStock_SinCambioNoGeneraMovimiento(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 10,
	})
	require.NoError(t, err)
	store.movements = nil

	_, err = uc.AdjustStock(context.Background(), companyA, adminID, "TEC-001", dto.AdjustStockRequest{
		NewStock: 10, Reason: "Conteo físico",
	})
	require.NoError(t, err)
	assert.Empty(t, store.movements, "ajustar al mismo stock no deja movimiento")
}

func TestAdjustStock_StockNegativoRechazado(t *testing.T) {
	uc := buildProductUseCase(newMemStore())
	_, err := uc.AdjustStock(context.Background(), companyA, adminID, "TEC-001", dto.AdjustStockRequest{
		NewStock: -3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_ProductoInexistente(t *testing.T) {
	uc := buildProductUseCase(newMemStore())
	_, err := uc.AdjustStock(context.Background(), companyA, adminID, "NO-EXISTE", dto.AdjustStockRequest{
		NewStock: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// TestUpdateProduct_CambioDeStockViaUpdate: actualizar el producto con un
// stock distinto pasa por la misma contabilidad que AdjustStock.
func TestUpdateProduct_CambioDeStockViaUpdate(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 10,
	})
	require.NoError(t, err)
	store.movements = nil

	nuevoNombre := "Teclado inalámbrico"
	nuevoStock := int64(7)
	resp, err := uc.Update(context.Background(), companyA, adminID, "TEC-001", dto.UpdateProductRequest{
		Name:  &nuevoNombre,
		Stock: &nuevoStock,
	})
	require.NoError(t, err)
	assert.Equal(t, "Teclado inalámbrico", resp.Name)
	assert.Equal(t, int64(7), resp.Stock)

	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeOUT, store.movements[0].Type)
	assert.Equal(t, int64(3), store.movements[0].Quantity)
	assert.Equal(t, "Ajuste manual: 10 → 7", store.movements[0].Reason)
}

func TestUpdateProduct_SoloPrecioNoTocaHistorial(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 10,
	})
	require.NoError(t, err)
	store.movements = nil

	nuevoPrecio := int64(120)
	_, err = uc.Update(context.Background(), companyA, adminID, "TEC-001", dto.UpdateProductRequest{
		Price: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.Empty(t, store.movements, "cambiar el precio no es un movimiento de inventario")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// TestDeleteProduct_BloqueadoPorVentas: un producto referenciado por líneas de
// venta no puede eliminarse (protege el historial).
func TestDeleteProduct_BloqueadoPorVentas(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	resp, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 10,
	})
	require.NoError(t, err)
	store.lines = append(store.lines, &entity.SaleLine{ID: "l1", SaleID: "v1", ProductID: resp.ID, Quantity: 1})

	err = uc.Delete(context.Background(), companyA, adminID, "TEC-001")
	assert.ErrorIs(t, err, domain.ErrProductHasSales)

	got, err := uc.GetByCode(companyA, "TEC-001")
	require.NoError(t, err)
	assert.NotNil(t, got, "el producto debe seguir existiendo")
}

// TestDeleteProduct_ConStockRegistraSalida: eliminar con stock > 0 deja el
// movimiento OUT "Eliminación de producto" antes de borrar.
func TestDeleteProduct_ConStockRegistraSalida(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	resp, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 8,
	})
	require.NoError(t, err)
	store.movements = nil

	require.NoError(t, uc.Delete(context.Background(), companyA, adminID, "TEC-001"))

	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeOUT, store.movements[0].Type)
	assert.Equal(t, int64(8), store.movements[0].Quantity)
	assert.Equal(t, "Eliminación de producto", store.movements[0].Reason)
	assert.NotContains(t, store.products, resp.ID)
}

func TestDeleteProduct_SinStockNoGeneraMovimiento(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 0,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), companyA, adminID, "TEC-001"))
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_PorNombreSinMayusculas(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado Mecánico", Price: 100, Stock: 1,
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "MON-001", Name: "Monitor 24", Price: 100, Stock: 1,
	})
	require.NoError(t, err)

	items, err := uc.Search(companyA, "teclado")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "TEC-001", items[0].Code)
}

func TestMovements_HistorialCompletoDelProducto(t *testing.T) {
	store := newMemStore()
	uc := buildProductUseCase(store)

	_, err := uc.Create(context.Background(), companyA, adminID, dto.CreateProductRequest{
		Code: "TEC-001", Name: "Teclado", Price: 100, Stock: 5,
	})
	require.NoError(t, err)
	_, err = uc.AdjustStock(context.Background(), companyA, adminID, "TEC-001", dto.AdjustStockRequest{
		NewStock: 9, Reason: "Compra",
	})
	require.NoError(t, err)

	movs, err := uc.Movements(companyA, "TEC-001", nil, nil, 50, 0)
	require.NoError(t, err)
	require.Len(t, movs, 2, "stock inicial + ajuste")
	assert.Equal(t, "Stock inicial", movs[0].Reason)
	assert.Equal(t, "Compra: 5 → 9", movs[1].Reason)
}

func TestMovements_ProductoInexistente(t *testing.T) {
	uc := buildProductUseCase(newMemStore())
	_, err := uc.Movements(companyA, "NO-EXISTE", nil, nil, 50, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
