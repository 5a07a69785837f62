// file: internals/features/school/academics/assignments/model/adviser_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdviserAssignmentModel mengikat seorang adviser ke (mapel, jenjang, tahun
// ajaran). Penugasan inilah yang jadi dasar hak tulis nilai — bukan role saja.
type AdviserAssignmentModel struct {
	AdviserAssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:adviser_assignment_id" json:"adviser_assignment_id"`

	AdviserAssignmentUserID    uuid.UUID `gorm:"type:uuid;not null;index;column:adviser_assignment_user_id"    json:"adviser_assignment_user_id"`
	AdviserAssignmentSubjectID uuid.UUID `gorm:"type:uuid;not null;index;column:adviser_assignment_subject_id" json:"adviser_assignment_subject_id"`
	AdviserAssignmentLevelID   uuid.UUID `gorm:"type:uuid;not null;index;column:adviser_assignment_level_id"   json:"adviser_assignment_level_id"`

	// Tahun ajaran format "2025/2026"; penugasan tahun lain tidak berlaku.
	AdviserAssignmentSchoolYear string `gorm:"type:varchar(9);not null;column:adviser_assignment_school_year" json:"adviser_assignment_school_year"`

	AdviserAssignmentIsActive bool `gorm:"not null;default:true;column:adviser_assignment_is_active" json:"adviser_assignment_is_active"`

	AdviserAssignmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:adviser_assignment_created_at" json:"adviser_assignment_created_at"`
	AdviserAssignmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:adviser_assignment_updated_at" json:"adviser_assignment_updated_at"`
	AdviserAssignmentDeletedAt gorm.DeletedAt `gorm:"column:adviser_assignment_deleted_at;index"                                   json:"adviser_assignment_deleted_at,omitempty"`
}

func (AdviserAssignmentModel) TableName() string { return "adviser_assignments" }
