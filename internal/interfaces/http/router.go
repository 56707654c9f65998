package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstore/inventory-api/internal/application/auth"
	"github.com/techstore/inventory-api/internal/application/inventory"
	"github.com/techstore/inventory-api/internal/application/reporting"
	"github.com/techstore/inventory-api/internal/application/usecase"
	"github.com/techstore/inventory-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	CatalogUC        *usecase.CatalogUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportUC         *reporting.ReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
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

	// Products (protegido; alta y baja solo admin/bodeguero)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.GetStock)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Deactivate)

	// Categorías y proveedores (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := protected.Group("/categories")
	categories.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	providers := protected.Group("/providers")
	providers.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), catalogHandler.CreateProvider)
	providers.Get("/", catalogHandler.ListProviders)

	// Motor de inventario (protegido; restock solo admin/bodeguero)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	invGroup.Post("/sell", inventoryHandler.Sell)
	invGroup.Post("/restock", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.Restock)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/movements", reportHandler.RecentMovements)
	reports.Get("/movements/:id", reportHandler.ProductHistory)
	reports.Get("/best-sellers", reportHandler.BestSellers)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/export.csv", reportHandler.ExportCSV)
	reports.Get("/low-stock.pdf", reportHandler.ExportLowStockPDF)
}
