// file: internals/helpers/auth/actor_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// Kunci locals yang diisi middleware AuthJWT
const (
	LocClaims   = "jwt_claims"
	LocUserID   = "user_id"
	LocRole     = "role"
	LocLevelIDs = "level_ids"
)

// Actor adalah identitas ter-autentikasi yang dipakai service akademik
// untuk cek otorisasi. Dibangun dari klaim token, bukan dari body request.
type Actor struct {
	UserID   uuid.UUID
	Role     string
	LevelIDs []uuid.UUID // scope jenjang utk principal/chairperson
}

func (a Actor) HasLevel(id uuid.UUID) bool {
	for _, l := range a.LevelIDs {
		if l == id {
			return true
		}
	}
	return false
}

// IsAdminLike: admin/owner boleh bypass scope jenjang.
func (a Actor) IsAdminLike() bool {
	return a.Role == constants.RoleAdmin || a.Role == constants.RoleOwner
}

// ActorFromContext membaca locals hasil AuthJWT. 401 kalau tidak lengkap.
func ActorFromContext(c *fiber.Ctx) (Actor, error) {
	var a Actor

	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return a, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return a, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	a.UserID = id

	if r, ok := c.Locals(LocRole).(string); ok {
		a.Role = strings.ToLower(strings.TrimSpace(r))
	}
	if a.Role == "" {
		return a, fiber.NewError(fiber.StatusUnauthorized, "role tidak ditemukan di token")
	}

	if raw, ok := c.Locals(LocLevelIDs).([]string); ok {
		for _, it := range raw {
			if lid, err := uuid.Parse(strings.TrimSpace(it)); err == nil {
				a.LevelIDs = append(a.LevelIDs, lid)
			}
		}
	}

	return a, nil
}

// EnsureRole memastikan actor punya salah satu role yang diizinkan.
func EnsureRole(c *fiber.Ctx, feature string, roles ...string) (Actor, error) {
	a, err := ActorFromContext(c)
	if err != nil {
		return a, err
	}
	for _, r := range roles {
		if a.Role == r {
			return a, nil
		}
	}
	return a, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorNonStudent(feature))
}
