// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "sekolahku_backend/internals/features/users/auth/route"
)

// AuthRoutes dipasang di group publik /api/auth.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(r, db)
}
