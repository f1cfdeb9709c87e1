package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/catalog"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/application/reports"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *catalog.ProductUseCase
	CustomerUC *catalog.CustomerUseCase
	ImportUC   *catalog.ImportUseCase
	MovementUC *inventory.MovementUseCase
	SaleUC     *sales.SaleUseCase
	ReportUC   *reports.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/stock", inventoryHandler.GetAvailable)
	products.Get("/:id/movements", inventoryHandler.ListMovements)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Post("/stock", inventoryHandler.GetAvailableBulk)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Patch("/items/:id", saleHandler.UpdateItem)
	salesGroup.Delete("/items/:id", saleHandler.DeleteItem)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Import (protegido, solo admin)
	importGroup := protected.Group("/import", RequireRole(entity.RoleAdmin))
	importHandler := NewImportHandler(deps.ImportUC)
	importGroup.Post("/confirm", importHandler.Confirm)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/stock", reportHandler.Stock)
	reportsGroup.Get("/indicators", reportHandler.Indicators)
}
