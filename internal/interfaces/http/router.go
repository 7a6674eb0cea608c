package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/teerex-store/internal/application/usecase"
	"github.com/jhoicas/teerex-store/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogueUC *usecase.CatalogueUseCase
	CartUC      *usecase.CartUseCase
	Session     SessionConfig
	StoreName   string
	Logger      *logger.Logger
}

// Router registra las vistas HTML y la API JSON. Todas las rutas llevan sesión de carrito.
func Router(app *fiber.App, deps RouterDeps) error {
	views, err := NewViews(deps.StoreName)
	if err != nil {
		return err
	}

	catalogueHandler := NewCatalogueHandler(deps.CatalogueUC, deps.CartUC, views)
	cartHandler := NewCartHandler(deps.CartUC, views, deps.Logger)

	site := app.Group("/", SessionMiddleware(deps.Session))

	// Vistas
	site.Get("/", catalogueHandler.Page)
	site.Get("/cart", cartHandler.Page)

	// Formularios (POST + 303 a "return")
	forms := site.Group("/cart/items/:id")
	forms.Post("/add", cartHandler.FormAction("add"))
	forms.Post("/increment", cartHandler.FormAction("increment"))
	forms.Post("/decrement", cartHandler.FormAction("decrement"))
	forms.Post("/remove", cartHandler.FormAction("remove"))

	// API JSON
	api := site.Group("/api")
	api.Get("/catalogue", catalogueHandler.List)

	cart := api.Group("/cart")
	cart.Get("/", cartHandler.Get)
	cart.Get("/summary.pdf", cartHandler.SummaryPDF)
	cart.Post("/items/:id", cartHandler.Add)
	cart.Post("/items/:id/increment", cartHandler.Increment)
	cart.Post("/items/:id/decrement", cartHandler.Decrement)
	cart.Delete("/items/:id", cartHandler.Remove)

	return nil
}
