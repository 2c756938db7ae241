package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Agslz/inventory-control-api-rest/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	Codec      usecase.PictureCodec
	Exporter   productExporter
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.DeleteByID)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Codec, deps.Exporter)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	// Rutas fijas antes que :id para que el router no las capture como parámetro
	products.Get("/export/excel", productHandler.ExportExcel)
	products.Get("/filter/:name", productHandler.GetByName)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.DeleteByID)
}
