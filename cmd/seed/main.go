// seed crea datos de demostración: una empresa, dos usuarios, un catálogo de
// productos y un par de ventas de ejemplo.
//
// Uso: go run ./cmd/seed
// Idempotencia: si la empresa demo ya existe (NIT duplicado) el programa
// termina sin tocar nada.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/CompuSpace/compuspace-api/internal/application/auth"
	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	appsales "github.com/CompuSpace/compuspace-api/internal/application/sales"
	"github.com/CompuSpace/compuspace-api/internal/application/usecase"
	"github.com/CompuSpace/compuspace-api/internal/domain"
	infrapdf "github.com/CompuSpace/compuspace-api/internal/infrastructure/pdf"
	"github.com/CompuSpace/compuspace-api/internal/infrastructure/postgres"
	"github.com/CompuSpace/compuspace-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	paymentMethodRepo := postgres.NewPaymentMethodRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo, paymentMethodRepo)
	productUC := usecase.NewProductUseCase(productRepo, movementRepo, txRunner)
	saleUC := appsales.NewSaleUseCase(txRunner, saleRepo, productRepo, companyRepo, infrapdf.NewMarotoReceiptGenerator())
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	company, err := companyUC.Create(dto.CreateCompanyRequest{
		NIT:   "900123456-7",
		Name:  "CompuSpace Demo",
		Email: "demo@compuspace.local",
		Phone: "3000000000",
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			fmt.Println("la empresa demo ya existe, nada que hacer")
			return
		}
		fmt.Fprintf(os.Stderr, "crear empresa: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("empresa creada: %s (%s)\n", company.Name, company.ID)

	// El primer usuario registrado queda como admin sin importar el rol pedido.
	admin, err := authUC.RegisterUser(dto.RegisterRequest{
		CompanyID:     company.ID,
		Username:      "admin",
		Password:      "admin-demo-123",
		RecoveryEmail: "admin@compuspace.local",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("usuario creado: %s (rol %s)\n", admin.Username, admin.Role)

	seller, err := authUC.RegisterUser(dto.RegisterRequest{
		CompanyID:     company.ID,
		Username:      "vendedor1",
		Password:      "vendedor-demo-123",
		RecoveryEmail: "ventas@compuspace.local",
		Role:          "vendedor",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear vendedor: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("usuario creado: %s (rol %s)\n", seller.Username, seller.Role)

	products := []dto.CreateProductRequest{
		{Code: "TEC-001", Name: "Teclado mecánico", Description: "Switches rojos, ES layout", Price: 185000, Stock: 25},
		{Code: "MOU-001", Name: "Mouse inalámbrico", Description: "2.4GHz + Bluetooth", Price: 95000, Stock: 40},
		{Code: "MON-001", Name: "Monitor 24\"", Description: "IPS 1080p 75Hz", Price: 650000, Stock: 12},
		{Code: "CAB-HDMI", Name: "Cable HDMI 2m", Description: "", Price: 25000, Stock: 100},
		{Code: "SSD-500", Name: "SSD 500GB NVMe", Description: "Lectura 3500MB/s", Price: 280000, Stock: 18},
	}
	for _, p := range products {
		if _, err := productUC.Create(ctx, company.ID, admin.ID, p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %s: %v\n", p.Code, err)
			os.Exit(1)
		}
		fmt.Printf("producto creado: %s (%s)\n", p.Name, p.Code)
	}

	demoSales := []dto.CreateSaleRequest{
		{
			Items: []dto.SaleItemRequest{
				{ProductCode: "TEC-001", Quantity: 1},
				{ProductCode: "MOU-001", Quantity: 1},
			},
			PaymentMethod: "Efectivo",
		},
		{
			Items: []dto.SaleItemRequest{
				{ProductCode: "CAB-HDMI", Quantity: 3},
			},
			PaymentMethod:   "Transferencia",
			DiscountPercent: decimal.NewFromInt(10),
		},
	}
	for i, s := range demoSales {
		sale, err := saleUC.CreateSale(ctx, company.ID, seller.ID, s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear venta demo %d: %v\n", i+1, err)
			os.Exit(1)
		}
		fmt.Printf("venta creada: #%s total %d (%s)\n", sale.ID, sale.Total, sale.PaymentMethod)
	}

	fmt.Println("datos de demostración listos")
}
