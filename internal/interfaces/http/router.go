package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pakoelda-code/wom-partes/internal/application/inventory"
	"github.com/pakoelda-code/wom-partes/internal/application/reports"
	"github.com/pakoelda-code/wom-partes/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LocationUC *usecase.LocationUseCase
	ItemUC     *usecase.ItemUseCase
	Engine     *inventory.MovementEngine
	Movements  *inventory.MovementQuery
	ReportUC   *reports.ReportUseCase
}

// Router registra las rutas de la API. Todas las rutas exigen la identidad
// del actor que inyecta la capa de autenticación externa.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", ActorMiddleware())

	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Delete("/:id", locationHandler.Deactivate)

	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.Search)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id/location", itemHandler.ChangeLocation)
	items.Delete("/:id", itemHandler.Deactivate)

	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Engine, deps.Movements)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Post("/adjustments", inventoryHandler.AdjustStock)
	api.Get("/items/:id/movements", inventoryHandler.History)

	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/stock", reportHandler.Stock)
	reportsGroup.Get("/movements", reportHandler.Movements)
	api.Get("/items/:id/stock", reportHandler.ItemStock)
}
