// file: internals/features/school/academics/honors/model/honor_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/approval"
)

// Status siklus persetujuan predikat honor. Tanpa loop revisi: honor yang
// salah dihitung ulang di hulu, bukan diedit di tempat.
const (
	HonorStatusPending  approval.Status = "pending"
	HonorStatusApproved approval.Status = "approved"
	HonorStatusRejected approval.Status = "rejected"
)

// HonorTransitions: pending → {approved, rejected}; dua-duanya terminal.
var HonorTransitions = approval.Table{
	HonorStatusPending: {HonorStatusApproved, HonorStatusRejected},
}

// HonorRecordModel adalah satu predikat kelulusan-dengan-pujian hasil
// komputasi GPA di hulu. Engine ini hanya menggerakkan persetujuannya;
// kolom GPA read-only di sini.
type HonorRecordModel struct {
	HonorRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:honor_record_id" json:"honor_record_id"`

	HonorRecordStudentID   uuid.UUID `gorm:"type:uuid;not null;index;column:honor_record_student_id"    json:"honor_record_student_id"`
	HonorRecordHonorTypeID uuid.UUID `gorm:"type:uuid;not null;index;column:honor_record_honor_type_id" json:"honor_record_honor_type_id"`
	HonorRecordLevelID     uuid.UUID `gorm:"type:uuid;not null;index;column:honor_record_level_id"      json:"honor_record_level_id"`
	HonorRecordSchoolYear  string    `gorm:"type:varchar(9);not null;column:honor_record_school_year"   json:"honor_record_school_year"`

	HonorRecordGPA float64 `gorm:"type:numeric(4,2);not null;column:honor_record_gpa" json:"honor_record_gpa"`

	HonorRecordStatus approval.Status `gorm:"type:varchar(20);not null;default:'pending';index;column:honor_record_status" json:"honor_record_status"`

	HonorRecordApprovedBy *uuid.UUID `gorm:"type:uuid;column:honor_record_approved_by"        json:"honor_record_approved_by,omitempty"`
	HonorRecordApprovedAt *time.Time `gorm:"type:timestamptz;column:honor_record_approved_at" json:"honor_record_approved_at,omitempty"`

	HonorRecordRejectedBy   *uuid.UUID `gorm:"type:uuid;column:honor_record_rejected_by"            json:"honor_record_rejected_by,omitempty"`
	HonorRecordRejectedAt   *time.Time `gorm:"type:timestamptz;column:honor_record_rejected_at"     json:"honor_record_rejected_at,omitempty"`
	HonorRecordRejectReason *string    `gorm:"type:varchar(1000);column:honor_record_reject_reason" json:"honor_record_reject_reason,omitempty"`

	// Override manual atas eligibility — ortogonal terhadap status di atas,
	// tidak pernah mengubahnya.
	HonorRecordIsOverridden   bool       `gorm:"not null;default:false;column:honor_record_is_overridden"       json:"honor_record_is_overridden"`
	HonorRecordOverriddenBy   *uuid.UUID `gorm:"type:uuid;column:honor_record_overridden_by"                    json:"honor_record_overridden_by,omitempty"`
	HonorRecordOverriddenAt   *time.Time `gorm:"type:timestamptz;column:honor_record_overridden_at"             json:"honor_record_overridden_at,omitempty"`
	HonorRecordOverrideReason *string    `gorm:"type:varchar(1000);column:honor_record_override_reason"         json:"honor_record_override_reason,omitempty"`

	HonorRecordCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:honor_record_created_at" json:"honor_record_created_at"`
	HonorRecordUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:honor_record_updated_at" json:"honor_record_updated_at"`
	HonorRecordDeletedAt gorm.DeletedAt `gorm:"column:honor_record_deleted_at;index"                                   json:"honor_record_deleted_at,omitempty"`
}

func (HonorRecordModel) TableName() string { return "honor_records" }
