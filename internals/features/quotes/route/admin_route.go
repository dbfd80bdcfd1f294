package route

import (
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	"motivaku_backend/internals/features/quotes/controller"
	"motivaku_backend/internals/middlewares"
)

// ✍️ Write routes (rate limited; the app is single tenant, no auth)
func QuoteAdminRoutes(api fiber.Router, store *datastore.MemStore) {
	ctrl := controller.NewQuoteController(store)

	admin := api.Group("/quotes", middlewares.WriteRateLimiter())
	admin.Post("/", ctrl.CreateQuote)       // ➕ Create quote
	admin.Post("/batch", ctrl.CreateQuotes) // ➕ Create many quotes
}
