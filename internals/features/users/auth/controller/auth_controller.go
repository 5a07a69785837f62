// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "sekolahku_backend/internals/features/users/auth/model"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

/*
=========================================================

	LOGIN
	POST /api/auth/login

=========================================================
*/
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user userModel.UserModel
	if err := ac.DB.WithContext(c.Context()).
		Where("user_email = ?", req.Email).
		First(&user).Error; err != nil {
		// Email tak dikenal dan password salah sengaja satu pesan.
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	levelIDs, err := ac.levelScope(c, user.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil scope jenjang")
	}

	now := time.Now().UTC()
	access, err := authService.IssueAccessToken(user, levelIDs, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := authService.IssueRefreshToken(user.UserID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	if err := ac.storeRefresh(c, user.UserID, refresh, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}
	setRefreshCookie(c, refresh, now)

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"user_role": user.UserRole,
			"level_ids": levelIDs,
		},
	})
}

/*
=========================================================

	REFRESH (rotating)
	POST /api/auth/refresh-token

=========================================================
*/
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	userID, err := authService.ParseRefreshToken(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	hash := authService.HashRefreshToken(raw)
	var rt authModel.RefreshTokenModel
	if err := ac.DB.WithContext(c.Context()).
		Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL AND refresh_token_expires_at > NOW()", hash).
		First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var user userModel.UserModel
	if err := ac.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	levelIDs, err := ac.levelScope(c, user.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil scope jenjang")
	}

	now := time.Now().UTC()
	access, err := authService.IssueAccessToken(user, levelIDs, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access baru")
	}
	newRefresh, err := authService.IssueRefreshToken(user.UserID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh baru")
	}

	// ROTATE: revoke token lama + simpan hash baru dalam satu transaksi.
	if err := ac.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&authModel.RefreshTokenModel{}).
			Where("refresh_token_id = ?", rt.RefreshTokenID).
			Update("refresh_token_revoked_at", now).Error; err != nil {
			return err
		}
		return tx.Create(&authModel.RefreshTokenModel{
			RefreshTokenUserID:    user.UserID,
			RefreshTokenHash:      authService.HashRefreshToken(newRefresh),
			RefreshTokenExpiresAt: now.Add(7 * 24 * time.Hour),
			RefreshTokenUserAgent: strptr(c.Get("User-Agent")),
			RefreshTokenIP:        strptr(c.IP()),
		}).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal rotasi refresh token")
	}
	setRefreshCookie(c, newRefresh, now)

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{"access_token": access})
}

/*
=========================================================

	LOGOUT
	POST /api/auth/logout

=========================================================
*/
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if raw := strings.TrimSpace(c.Cookies("refresh_token")); raw != "" {
		now := time.Now().UTC()
		ac.DB.WithContext(c.Context()).
			Model(&authModel.RefreshTokenModel{}).
			Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL", authService.HashRefreshToken(raw)).
			Update("refresh_token_revoked_at", now)
	}
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/*
=========================================================

	ME
	GET /api/u/me

=========================================================
*/
func (ac *AuthController) Me(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.WithContext(c.Context()).
		Where("user_id = ?", actor.UserID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user_id":    user.UserID,
		"user_name":  user.UserName,
		"user_email": user.UserEmail,
		"user_role":  user.UserRole,
		"level_ids":  actor.LevelIDs,
	})
}

/* ===== helpers kecil ===== */

func (ac *AuthController) levelScope(c *fiber.Ctx, userID uuid.UUID) ([]uuid.UUID, error) {
	var rows []userModel.UserLevelModel
	if err := ac.DB.WithContext(c.Context()).
		Where("user_level_user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.UserLevelLevelID)
	}
	return out, nil
}

func (ac *AuthController) storeRefresh(c *fiber.Ctx, userID uuid.UUID, refresh string, now time.Time) error {
	return ac.DB.WithContext(c.Context()).Create(&authModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      authService.HashRefreshToken(refresh),
		RefreshTokenExpiresAt: now.Add(7 * 24 * time.Hour),
		RefreshTokenUserAgent: strptr(c.Get("User-Agent")),
		RefreshTokenIP:        strptr(c.IP()),
	}).Error
}

func setRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func strptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
