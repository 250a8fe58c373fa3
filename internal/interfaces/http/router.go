package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nikiya/zaiko-api/internal/application/inventory"
	"github.com/nikiya/zaiko-api/internal/application/query"
	"github.com/nikiya/zaiko-api/internal/application/report"
	"github.com/nikiya/zaiko-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	ReferenceUC *usecase.ReferenceUseCase
	UpdateStock *inventory.UpdateStockUseCase
	Engine      *query.Engine
	Reports     *report.Builder
	PDF         report.PDFGenerator
	Excel       report.ExcelWriter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Engine)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory movements
	movements := api.Group("/movements")
	inventoryHandler := NewInventoryHandler(deps.UpdateStock, deps.Engine)
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Post("/", inventoryHandler.RegisterMovement)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Engine)
	categories.Get("/", categoryHandler.List)
	categories.Get("/options", categoryHandler.Options)
	categories.Post("/", categoryHandler.Create)
	categories.Delete("/:id", categoryHandler.Delete)

	// Staff y destinations (listas de referencia)
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	staff := api.Group("/staff")
	staff.Get("/", referenceHandler.ListStaff)
	staff.Post("/", referenceHandler.CreateStaff)
	staff.Delete("/:id", referenceHandler.DeleteStaff)

	destinations := api.Group("/destinations")
	destinations.Get("/", referenceHandler.ListDestinations)
	destinations.Post("/", referenceHandler.CreateDestination)
	destinations.Delete("/:id", referenceHandler.DeleteDestination)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports, deps.PDF, deps.Excel)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/history", reportHandler.History)
}
