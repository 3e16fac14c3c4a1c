// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	studentMarkRoute "studentmarks_backend/internals/features/students/marks/route"
	"studentmarks_backend/internals/features/students/marks/service"
	"studentmarks_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, svc *service.StudentMarkService) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, svc)

	// satu limiter untuk form dan API, budget per IP dibagi
	submitLimiter := middlewares.SubmitRateLimiter()

	// ===================== WEB (form + result) =====================
	log.Println("[INFO] Mounting StudentMark web routes...")
	studentMarkRoute.StudentMarkWebRoutes(app, svc, submitLimiter)

	// ===================== API =====================
	log.Println("[INFO] Mounting StudentMark API routes...")
	api := app.Group("/api")
	studentMarkRoute.StudentMarkAPIRoutes(api, svc, submitLimiter)

	// catch-all 404 (harus paling akhir)
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})
}
