package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-api/internal/application/analytics"
	"github.com/tu-usuario/pos-api/internal/application/auth"
	"github.com/tu-usuario/pos-api/internal/application/inventory"
	"github.com/tu-usuario/pos-api/internal/application/sales"
	"github.com/tu-usuario/pos-api/internal/application/usecase"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	SaleUC      *sales.SaleUseCase
	ReceiptUC   *sales.ReceiptUseCase
	RestockUC   *inventory.RestockUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: login público, registro solo admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; eliminar solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// low-stock antes de /:id para que no lo capture el parámetro.
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Sales (protegido; reporte y eliminación solo admin)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.GetAll)
	// report/range antes de /:id para que no lo capture el parámetro.
	salesGroup.Get("/report/range", adminOnly, saleHandler.Report)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Delete("/:id", adminOnly, saleHandler.Delete)

	// Inventory (reposición solo admin, historial para toda sesión)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RestockUC)
	invGroup.Post("/restock", adminOnly, inventoryHandler.Restock)
	invGroup.Get("/logs", inventoryHandler.Logs)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)
}
