package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/brand-catalog-api/internal/application/catalog"
	"github.com/jhoicas/brand-catalog-api/internal/application/pricing"
	"github.com/jhoicas/brand-catalog-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BrandUC       *catalog.BrandUseCase
	ProductUC     *catalog.ProductUseCase
	PricingUC     *pricing.PricingUseCase
	ReplacePolicy catalog.ReplaceMode
	Log           *logger.Logger
}

// NewApp crea la app Fiber con la configuración común: rutas con escapes decodificados
// (nombres de categoría en coreano), errores JSON y recover.
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		UnescapePath: true,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	policy := deps.ReplacePolicy
	if policy == "" {
		policy = catalog.ModeMerge
	}

	api := app.Group("/api/v1")

	pricingHandler := NewPricingHandler(deps.PricingUC, log)

	// Brands. /cheapest antes que /:name.
	brands := api.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC, policy, log)
	brands.Get("/cheapest", pricingHandler.CheapestBrand)
	brands.Post("/", brandHandler.Create)
	brands.Get("/", brandHandler.List)
	brands.Get("/:name", brandHandler.Get)
	brands.Put("/:name", brandHandler.ReplacePrices)
	brands.Delete("/:name", brandHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/price", productHandler.UpdatePrice)
	products.Delete("/:id", productHandler.Delete)

	// Categories y consultas agregadas
	categories := api.Group("/categories")
	categories.Get("/", pricingHandler.Categories)
	categories.Get("/cheapest-brands", pricingHandler.CheapestPerCategory)
	categories.Get("/:category/price-stats", pricingHandler.CategoryStat)
}
