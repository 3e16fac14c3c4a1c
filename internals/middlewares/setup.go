package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"studentmarks_backend/internals/configs"
	"studentmarks_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan:
// recover → request-id → logger → metrics → cors → limiter → compress/etag.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	timeout := cfg.StoreTimeout + time.Second
	if cfg.StoreTimeout <= 0 {
		timeout = 5 * time.Second
	}

	app.Use(RecoveryMiddleware())
	app.Use(RequestIDMiddleware(timeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(MetricsMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter(cfg.RateLimitMax))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
