// file: internals/features/students/marks/route/student_mark_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"studentmarks_backend/internals/features/students/marks/controller"
	"studentmarks_backend/internals/features/students/marks/service"
)

/*
Web routes (server-rendered):

	GET  /         form
	POST /submit   → 302 /result?id=
	GET  /result   ?id=

submitGuard biasanya rate limiter khusus submit.
*/
func StudentMarkWebRoutes(r fiber.Router, svc *service.StudentMarkService, submitGuard ...fiber.Handler) {
	ctl := controller.NewStudentMarkController(svc)

	r.Get("/", ctl.ShowForm)
	r.Post("/submit", append(submitGuard, ctl.Submit)...)
	r.Get("/result", ctl.Result)
}

/*
API routes. Contoh mount: StudentMarkAPIRoutes(app.Group("/api"), svc)

	POST /api/students/marks
	GET  /api/students/marks/:id
*/
func StudentMarkAPIRoutes(r fiber.Router, svc *service.StudentMarkService, submitGuard ...fiber.Handler) {
	ctl := controller.NewStudentMarkController(svc)

	g := r.Group("/students/marks")
	g.Post("/", append(submitGuard, ctl.CreateJSON)...)
	g.Get("/:id", ctl.GetJSON)
}
