// file: internals/middlewares/role_guard_middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// RequireRoles menolak request yang aktornya bukan salah satu role ini.
// Dipasang setelah AuthJWT (butuh locals klaim).
func RequireRoles(feature string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helperAuth.EnsureRole(c, feature, roles...); err != nil {
			return helper.FromFiberError(c, err)
		}
		return c.Next()
	}
}
