package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	State *session.State
}

// Router registra las rutas de la interfaz local.
func Router(app *fiber.App, deps RouterDeps) {
	ui := app.Group("/ui")

	// Productos
	products := ui.Group("/products")
	productHandler := NewProductHandler(deps.State)
	products.Get("/", productHandler.Table)
	products.Post("/reload", productHandler.Reload)

	// Lista de la compra
	shopping := ui.Group("/shopping-list")
	shoppingHandler := NewShoppingHandler(deps.State)
	shopping.Get("/", shoppingHandler.List)
	shopping.Post("/items", shoppingHandler.Add)
	shopping.Patch("/items/:index/cart", shoppingHandler.SetCart)
	shopping.Patch("/items/:index/quantity", shoppingHandler.SetQuantity)
	shopping.Delete("/items/:index", shoppingHandler.RequestRemove)
	shopping.Post("/remove/confirm", shoppingHandler.ConfirmRemove)
	shopping.Post("/remove/cancel", shoppingHandler.CancelRemove)
	shopping.Get("/pdf", shoppingHandler.ExportPDF)

	// Sugerencias y banner de stock bajo
	suggestions := ui.Group("/suggestions")
	suggestionHandler := NewSuggestionHandler(deps.State)
	suggestions.Get("/", suggestionHandler.List)
	suggestions.Post("/:name/accept", suggestionHandler.Accept)
	suggestions.Post("/:name/reject", suggestionHandler.Reject)

	banner := ui.Group("/banner")
	banner.Get("/", suggestionHandler.Banner)
	banner.Post("/close", suggestionHandler.CloseBanner)
	banner.Post("/go-shopping", suggestionHandler.GoShopping)

	// Recetas
	recipes := ui.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.State)
	recipes.Get("/", recipeHandler.List)
	recipes.Post("/reload", recipeHandler.Reload)
	recipes.Post("/:name/favorite", recipeHandler.ToggleFavorite)
	recipes.Post("/:name/add-to-list", recipeHandler.AddToList)

	// Importación de tickets y notificaciones
	importHandler := NewImportHandler(deps.State)
	imports := ui.Group("/import")
	imports.Post("/receipt", importHandler.SubmitReceipt)
	imports.Post("/confirm", importHandler.ConfirmImport)
	ui.Get("/notifications", importHandler.Toasts)
}
