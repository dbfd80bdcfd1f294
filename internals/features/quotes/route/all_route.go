package route

import (
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	"motivaku_backend/internals/features/quotes/controller"
)

// 🌐 Public (read-only)
func AllQuoteRoutes(api fiber.Router, store *datastore.MemStore) {
	ctrl := controller.NewQuoteController(store)

	// /random must register before /:id
	quotes := api.Group("/quotes")
	quotes.Get("/", ctrl.GetAllQuotes)         // 📄 All quotes (?category= filter)
	quotes.Get("/random", ctrl.GetRandomQuote) // 🎲 Random quote within category
	quotes.Get("/:id", ctrl.GetQuoteByID)      // 🔍 Quote detail
}
