// file: internals/features/users/auth/service/token_issuer.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

// IssueAccessToken membuat access JWT dengan klaim yang dibaca middleware:
// id, role, level_ids. level_ids diisi scope jenjang principal/chairperson.
func IssueAccessToken(u userModel.UserModel, levelIDs []uuid.UUID, now time.Time) (string, error) {
	ids := make([]string, 0, len(levelIDs))
	for _, id := range levelIDs {
		ids = append(ids, id.String())
	}

	claims := jwt.MapClaims{
		"sub":       u.UserID.String(),
		"id":        u.UserID.String(),
		"role":      u.UserRole,
		"level_ids": ids,
		"typ":       "access",
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken membuat refresh JWT (klaim minimal: sub saja).
func IssueRefreshToken(userID uuid.UUID, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTRefreshSecret))
}

// HashRefreshToken: HMAC-SHA256 atas token — yang disimpan di DB hanya ini.
func HashRefreshToken(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// ParseRefreshToken memverifikasi refresh JWT dan mengembalikan user id.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	return id, nil
}
