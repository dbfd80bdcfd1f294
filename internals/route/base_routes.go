package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	helper "motivaku_backend/internals/helpers"
)

func BaseRoutes(app *fiber.App, store *datastore.MemStore) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Motivaku backend is up 🚀")
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("simulated panic!") // testing panic handler
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		uptime := time.Since(startTime).Seconds()

		return helper.Success(c, "OK", fiber.Map{
			"quotes_seeded":  len(store.Quotes.All()),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
