// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	userRoute "sekolahku_backend/internals/features/users/user/route"
	"sekolahku_backend/internals/middlewares"
)

// UserRoutes: dipasang di /api/u (semua user ter-autentikasi).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.MeRoutes(r, db)
	userRoute.UserUserRoutes(r, db)
}

// AdminUserMgmtRoutes: kelola akun — admin/owner saja, lebih sempit dari
// group /api/a (yang juga ditembus principal utk persetujuan).
func AdminUserMgmtRoutes(r fiber.Router, db *gorm.DB) {
	g := r.Group("", middlewares.RequireRoles("manajemen akun", constants.OwnerAndAbove...))
	userRoute.AdminUserRoutes(g, db)
}
