// file: internals/features/school/academics/grades/route/grade_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "sekolahku_backend/internals/features/school/academics/grades/controller"
	"sekolahku_backend/internals/middlewares"
)

// UserGradeRoutes: jalur penulis nilai (adviser/admin) + baca.
func UserGradeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeController.NewGradeController(db)

	g := r.Group("/grades")
	g.Post("/", ctrl.Upsert)
	g.Post("/import", middlewares.ImportRateLimiter(), ctrl.Import)
	g.Post("/:id/submit", ctrl.Submit)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Detail)
}

// AdminGradeRoutes: jalur approver (principal/admin/owner).
func AdminGradeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeController.NewGradeController(db)

	g := r.Group("/grades")
	g.Get("/queue", ctrl.Queue)
	g.Post("/:id/approve", ctrl.Approve)
	g.Post("/:id/return", ctrl.Return)
}
