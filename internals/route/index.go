// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth_school"
	routeDetails "sekolahku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	// Base: /api/auth — login/refresh/logout, tanpa JWT.
	log.Println("[INFO] Setting up AUTH routes...")
	routeDetails.AuthRoutes(app.Group("/api/auth"), db)

	// ===================== PRIVATE (USER) =====================
	// Base: /api/u — semua user ter-autentikasi; scope per operasi dicek
	// service (adviser assignment, jenjang principal, dst).
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== APPROVER =====================
	// Base: /api/a — antrean & transisi persetujuan + administrasi.
	log.Println("[INFO] Setting up APPROVER/ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		middlewares.RequireRoles("administrasi akademik", constants.ApproverRoles...),
	)

	// ===================== MOUNT =====================
	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(private, db)
	routeDetails.AdminUserMgmtRoutes(admin, db)

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicUserRoutes(private, db)
	routeDetails.AcademicAdminRoutes(admin, db)
}
