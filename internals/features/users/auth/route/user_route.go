// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik /api/auth (login/refresh/logout).
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/refresh-token", ctrl.RefreshToken)
	r.Post("/logout", ctrl.Logout)
}

// MeRoutes: profil aktor ter-autentikasi, dipasang di group /api/u.
func MeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)
	r.Get("/me", ctrl.Me)
}
