// file: internals/features/school/academics/assignments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "sekolahku_backend/internals/features/school/academics/assignments/controller"
)

// AdminAssignmentRoutes: kelola mapel & penugasan adviser (admin/owner)
func AdminAssignmentRoutes(r fiber.Router, db *gorm.DB) {
	actrl := &assignmentController.AssignmentController{DB: db}
	sctrl := &assignmentController.SubjectController{DB: db}

	g := r.Group("/assignments")
	g.Post("/", actrl.Create)
	g.Post("/:id/deactivate", actrl.Deactivate)
	g.Get("/", actrl.List)

	s := r.Group("/subjects")
	s.Post("/", sctrl.Create)
}

// UserAssignmentRoutes: baca daftar mapel
func UserAssignmentRoutes(r fiber.Router, db *gorm.DB) {
	sctrl := &assignmentController.SubjectController{DB: db}

	s := r.Group("/subjects")
	s.Get("/", sctrl.List)
}
