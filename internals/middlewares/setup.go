package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the shared middleware chain.
// Order matters: recovery first so the logger still sees panicking requests.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
