// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest — create by admin. Password di-hash di controller.
// Field student_* hanya dipakai role student; level_ids hanya staf
// (principal/chairperson).
type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=100"`
	Email    string `json:"email"     validate:"required,email,max=120"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=student adviser principal chairperson admin owner"`

	StudentNumber       string `json:"student_number"         validate:"omitempty,max=40"`
	StudentYearLevelTag string `json:"student_year_level_tag" validate:"omitempty,max=40"`

	LevelIDs []uuid.UUID `json:"level_ids" validate:"omitempty,dive,required"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.StudentNumber = strings.TrimSpace(r.StudentNumber)
	r.StudentYearLevelTag = strings.TrimSpace(r.StudentYearLevelTag)
}

// ToModel — hash password dulu di controller sebelum dipasang.
func (r CreateUserRequest) ToModel(hashedPassword string) model.UserModel {
	return model.UserModel{
		UserName:     r.UserName,
		UserEmail:    r.Email,
		UserPassword: hashedPassword,
		UserRole:     r.Role,
		UserIsActive: true,
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID       uuid.UUID `json:"user_id"`
	Name     string    `json:"user_name"`
	Email    string    `json:"user_email"`
	Role     string    `json:"user_role"`
	IsActive bool      `json:"user_is_active"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:       m.UserID,
		Name:     m.UserName,
		Email:    m.UserEmail,
		Role:     m.UserRole,
		IsActive: m.UserIsActive,
	}
}

func FromUserModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromUserModel(m))
	}
	return out
}
