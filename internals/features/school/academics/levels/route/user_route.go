// file: internals/features/school/academics/levels/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelController "sekolahku_backend/internals/features/school/academics/levels/controller"
)

// AllLevelRoutes: endpoint referensi jenjang (cukup login)
func AllLevelRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &levelController.LevelController{DB: db}

	g := r.Group("/levels")
	g.Get("/", ctrl.List)
	g.Get("/scale", ctrl.Scale)
}
