// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sekolahku_backend/internals/features/users/user/controller"
)

// AdminUserRoutes: kelola akun (admin/owner).
func AdminUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	g := r.Group("/users")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
}

// UserUserRoutes: lookup siswa utk form nilai.
func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	r.Get("/students/lookup", ctrl.StudentLookup)
}
