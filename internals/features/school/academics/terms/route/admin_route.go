// file: internals/features/school/academics/terms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	termController "sekolahku_backend/internals/features/school/academics/terms/controller"
)

// AdminTermRoutes: kelola periode penilaian (admin/owner)
func AdminTermRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &termController.GradingPeriodController{DB: db}

	g := r.Group("/terms")
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Get("/", ctrl.List)
}

// UserTermRoutes: baca periode utk form input nilai
func UserTermRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &termController.GradingPeriodController{DB: db}

	g := r.Group("/terms")
	g.Get("/selectable", ctrl.Selectable)
}
