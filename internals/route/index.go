// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	favoriteRoute "motivaku_backend/internals/features/favorites/route"
	historyRoute "motivaku_backend/internals/features/history/route"
	preferenceRoute "motivaku_backend/internals/features/preferences/route"
	quoteRoute "motivaku_backend/internals/features/quotes/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, store *datastore.MemStore) {
	startTime = time.Now()

	BaseRoutes(app, store)

	api := app.Group("/api")

	log.Println("[INFO] Setting up QuoteRoutes...")
	quoteRoute.AllQuoteRoutes(api, store)
	quoteRoute.QuoteAdminRoutes(api, store)

	log.Println("[INFO] Setting up PreferenceRoutes...")
	preferenceRoute.PreferenceRoutes(api, store)

	log.Println("[INFO] Setting up FavoriteRoutes...")
	favoriteRoute.FavoriteRoutes(api, store)

	log.Println("[INFO] Setting up HistoryRoutes...")
	historyRoute.HistoryRoutes(api, store)
}
