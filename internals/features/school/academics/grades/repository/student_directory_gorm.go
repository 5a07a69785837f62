// file: internals/features/school/academics/grades/repository/student_directory_gorm.go
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/academics/grades/service"
)

// StudentDirectoryGorm me-resolve identifier baris CSV / input manual ke
// siswa. Identifier boleh uuid akun ATAU nomor induk; match dibatasi
// role student supaya nomor yang kebetulan mirip akun staf tidak nyangkut.
type StudentDirectoryGorm struct {
	DB *gorm.DB
}

func NewStudentDirectoryGorm(db *gorm.DB) *StudentDirectoryGorm {
	return &StudentDirectoryGorm{DB: db}
}

type studentRow struct {
	UserID       uuid.UUID `gorm:"column:user_id"`
	UserName     string    `gorm:"column:user_name"`
	YearLevelTag string    `gorm:"column:student_profile_year_level_tag"`
}

func (r *StudentDirectoryGorm) FindByIDOrNumber(ctx context.Context, identifier string) (*service.Student, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, service.ErrStudentNotFound
	}

	q := r.DB.WithContext(ctx).
		Table("users").
		Select("users.user_id, users.user_name, student_profiles.student_profile_year_level_tag").
		Joins("JOIN student_profiles ON student_profiles.student_profile_user_id = users.user_id").
		Where("users.user_role = ?", constants.RoleStudent).
		Where("users.user_deleted_at IS NULL AND student_profiles.student_profile_deleted_at IS NULL")

	if id, err := uuid.Parse(identifier); err == nil {
		q = q.Where("users.user_id = ?", id)
	} else {
		q = q.Where("student_profiles.student_profile_number = ?", identifier)
	}

	var row studentRow
	if err := q.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrStudentNotFound
		}
		return nil, err
	}

	return &service.Student{
		ID:           row.UserID,
		Name:         row.UserName,
		YearLevelTag: row.YearLevelTag,
	}, nil
}
