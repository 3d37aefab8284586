package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdu/inventory-api/internal/application/inventory"
	"github.com/bdu/inventory-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	StockMoveUC *usecase.StockMoveUseCase
	ApplyMove   *inventory.ApplyMoveUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Liveness probe: responde mientras el proceso esté arriba.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Stock moves (el libro: solo listar y aplicar, nunca update/delete)
	moves := api.Group("/stock_moves")
	moveHandler := NewStockMoveHandler(deps.ApplyMove, deps.StockMoveUC)
	moves.Get("/", moveHandler.List)
	moves.Post("/", moveHandler.Create)
}
