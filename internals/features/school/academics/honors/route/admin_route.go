// file: internals/features/school/academics/honors/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	honorController "sekolahku_backend/internals/features/school/academics/honors/controller"
)

// AdminHonorRoutes: review predikat honor (principal/admin/owner).
func AdminHonorRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := honorController.NewHonorController(db)

	g := r.Group("/honors")
	g.Get("/", ctrl.List)
	g.Post("/:id/approve", ctrl.Approve)
	g.Post("/:id/reject", ctrl.Reject)
	g.Post("/:id/override", ctrl.Override)
}
