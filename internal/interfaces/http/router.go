package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CompuSpace/compuspace-api/internal/application/auth"
	"github.com/CompuSpace/compuspace-api/internal/application/sales"
	"github.com/CompuSpace/compuspace-api/internal/application/usecase"
	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC       *usecase.CompanyUseCase
	ProductUC       *usecase.ProductUseCase
	UserUC          *usecase.UserUseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	SupplierUC      *usecase.SupplierUseCase
	SaleUC          *sales.SaleUseCase
	ReportsUC       *sales.ReportsUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público: el registro de empresa es el punto de entrada)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:code", productHandler.GetByCode)
	products.Put("/:code", productHandler.Update)
	products.Patch("/:code/stock", productHandler.AdjustStock)
	products.Get("/:code/movements", productHandler.Movements)
	products.Delete("/:code", adminOnly, productHandler.Delete)

	// Sales (protegido; anular requiere rol admin)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Post("/calculate", saleHandler.Calculate)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Post("/:id/reverse", adminOnly, saleHandler.Reverse)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reports.Get("/daily", reportHandler.DailySummary)
	reports.Get("/statistics", reportHandler.Statistics)
	reports.Get("/top-products", reportHandler.TopProducts)

	// Payment methods (protegido; escritura solo admin)
	methods := protected.Group("/payment-methods")
	methodHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	methods.Get("/", methodHandler.List)
	methods.Post("/", adminOnly, methodHandler.Create)
	methods.Put("/:id", adminOnly, methodHandler.Update)
	methods.Delete("/:id", adminOnly, methodHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Users (protegido, solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/deactivate", userHandler.Deactivate)
}
