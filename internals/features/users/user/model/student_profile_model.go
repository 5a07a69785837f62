// file: internals/features/users/user/model/student_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentProfileModel melengkapi akun ber-role student: nomor induk (unik,
// dipakai matching baris CSV) dan tag tingkat ("grade_10") yang jadi sumber
// derivasi tahun belajar saat nilai dibuat.
type StudentProfileModel struct {
	StudentProfileID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_profile_id" json:"student_profile_id"`
	StudentProfileUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:student_profile_user_id"            json:"student_profile_user_id"`

	StudentProfileNumber       string `gorm:"type:varchar(40);not null;uniqueIndex;column:student_profile_number" json:"student_profile_number"`
	StudentProfileYearLevelTag string `gorm:"type:varchar(40);not null;default:'';column:student_profile_year_level_tag" json:"student_profile_year_level_tag"`

	StudentProfileCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_profile_created_at" json:"student_profile_created_at"`
	StudentProfileUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_profile_updated_at" json:"student_profile_updated_at"`
	StudentProfileDeletedAt gorm.DeletedAt `gorm:"column:student_profile_deleted_at;index"                                   json:"student_profile_deleted_at,omitempty"`
}

func (StudentProfileModel) TableName() string { return "student_profiles" }
