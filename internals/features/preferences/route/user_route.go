package route

import (
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	"motivaku_backend/internals/features/preferences/controller"
)

func PreferenceRoutes(api fiber.Router, store *datastore.MemStore) {
	ctrl := controller.NewPreferenceController(store)

	prefs := api.Group("/preferences")
	prefs.Get("/", ctrl.GetPreferences)              // 🔍 Current record (null if unset)
	prefs.Get("/summary", ctrl.GetPreferenceSummary) // 📊 Nickname/goal/D-day summary
	prefs.Post("/", ctrl.SetPreferences)             // 💾 Create or replace
	prefs.Patch("/", ctrl.UpdatePreferences)         // ✏️ Partial update
}
