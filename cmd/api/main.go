package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/CompuSpace/compuspace-api/internal/application/auth"
	appsales "github.com/CompuSpace/compuspace-api/internal/application/sales"
	"github.com/CompuSpace/compuspace-api/internal/application/usecase"
	infrapdf "github.com/CompuSpace/compuspace-api/internal/infrastructure/pdf"
	"github.com/CompuSpace/compuspace-api/internal/infrastructure/postgres"
	httpRouter "github.com/CompuSpace/compuspace-api/internal/interfaces/http"
	"github.com/CompuSpace/compuspace-api/pkg/config"
	"github.com/CompuSpace/compuspace-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	paymentMethodRepo := postgres.NewPaymentMethodRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()

	companyUC := usecase.NewCompanyUseCase(companyRepo, paymentMethodRepo)
	productUC := usecase.NewProductUseCase(productRepo, movementRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo)
	paymentMethodUC := usecase.NewPaymentMethodUseCase(paymentMethodRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	saleUC := appsales.NewSaleUseCase(txRunner, saleRepo, productRepo, companyRepo, receiptGenerator)
	reportsUC := appsales.NewReportsUseCase(reportRepo, saleRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CompuSpace API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:       companyUC,
		ProductUC:       productUC,
		UserUC:          userUC,
		PaymentMethodUC: paymentMethodUC,
		SupplierUC:      supplierUC,
		SaleUC:          saleUC,
		ReportsUC:       reportsUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
