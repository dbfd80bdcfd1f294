package route

import (
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	"motivaku_backend/internals/features/history/controller"
)

func HistoryRoutes(api fiber.Router, store *datastore.MemStore) {
	ctrl := controller.NewHistoryController(store)

	history := api.Group("/history")
	history.Get("/", ctrl.GetHistory)      // 📄 10 most recent views, joined with quote
	history.Post("/", ctrl.AddHistory)     // ➕ Record a view
	history.Delete("/", ctrl.ClearHistory) // 🗑️ Clear the whole log
}
