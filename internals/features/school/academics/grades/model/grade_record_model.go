// file: internals/features/school/academics/grades/model/grade_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/approval"
)

// Status siklus persetujuan nilai. Satu kolom enum, bukan boolean lepas.
const (
	GradeStatusDraft     approval.Status = "draft"
	GradeStatusSubmitted approval.Status = "submitted"
	GradeStatusApproved  approval.Status = "approved"
	GradeStatusReturned  approval.Status = "returned"
)

// GradeTransitions: draft → submitted → {approved, returned};
// returned boleh diperbaiki lalu submit ulang; approved terminal.
var GradeTransitions = approval.Table{
	GradeStatusDraft:     {GradeStatusSubmitted},
	GradeStatusSubmitted: {GradeStatusApproved, GradeStatusReturned},
	GradeStatusReturned:  {GradeStatusSubmitted},
}

// GradeRecordModel adalah satu catatan nilai siswa.
//
// Uniqueness key: (student, subject, level, school_year, period-or-null) —
// "tanpa periode" adalah nilai kunci tersendiri, bukan wildcard. Karena
// period nullable, unique index-nya pakai ekspresi di migration:
//
//	CREATE UNIQUE INDEX uq_grade_records_identity ON grade_records (
//	    grade_record_student_id, grade_record_subject_id,
//	    grade_record_level_id, grade_record_school_year,
//	    COALESCE(grade_record_period_id, '00000000-0000-0000-0000-000000000000')
//	) WHERE grade_record_deleted_at IS NULL;
type GradeRecordModel struct {
	GradeRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_record_id" json:"grade_record_id"`

	GradeRecordStudentID  uuid.UUID  `gorm:"type:uuid;not null;index;column:grade_record_student_id"   json:"grade_record_student_id"`
	GradeRecordSubjectID  uuid.UUID  `gorm:"type:uuid;not null;index;column:grade_record_subject_id"   json:"grade_record_subject_id"`
	GradeRecordLevelID    uuid.UUID  `gorm:"type:uuid;not null;index;column:grade_record_level_id"     json:"grade_record_level_id"`
	GradeRecordSchoolYear string     `gorm:"type:varchar(9);not null;column:grade_record_school_year"  json:"grade_record_school_year"`
	GradeRecordPeriodID   *uuid.UUID `gorm:"type:uuid;index;column:grade_record_period_id"             json:"grade_record_period_id,omitempty"`

	GradeRecordYearOfStudy *int    `gorm:"column:grade_record_year_of_study"          json:"grade_record_year_of_study,omitempty"`
	GradeRecordValue       float64 `gorm:"type:numeric(6,2);not null;column:grade_record_value" json:"grade_record_value"`

	GradeRecordIsFinalAverage bool `gorm:"not null;default:false;column:grade_record_is_final_average" json:"grade_record_is_final_average"`

	GradeRecordStatus approval.Status `gorm:"type:varchar(20);not null;default:'draft';index;column:grade_record_status" json:"grade_record_status"`

	// Stamp audit per transisi — selalu ditulis seatomik dengan status.
	GradeRecordSubmittedBy *uuid.UUID `gorm:"type:uuid;column:grade_record_submitted_by"        json:"grade_record_submitted_by,omitempty"`
	GradeRecordSubmittedAt *time.Time `gorm:"type:timestamptz;column:grade_record_submitted_at" json:"grade_record_submitted_at,omitempty"`

	GradeRecordApprovedBy *uuid.UUID `gorm:"type:uuid;column:grade_record_approved_by"        json:"grade_record_approved_by,omitempty"`
	GradeRecordApprovedAt *time.Time `gorm:"type:timestamptz;column:grade_record_approved_at" json:"grade_record_approved_at,omitempty"`

	GradeRecordReturnedBy   *uuid.UUID `gorm:"type:uuid;column:grade_record_returned_by"          json:"grade_record_returned_by,omitempty"`
	GradeRecordReturnedAt   *time.Time `gorm:"type:timestamptz;column:grade_record_returned_at"   json:"grade_record_returned_at,omitempty"`
	GradeRecordReturnReason *string    `gorm:"type:varchar(1000);column:grade_record_return_reason" json:"grade_record_return_reason,omitempty"`

	GradeRecordCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:grade_record_created_by" json:"grade_record_created_by"`

	GradeRecordCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grade_record_created_at" json:"grade_record_created_at"`
	GradeRecordUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grade_record_updated_at" json:"grade_record_updated_at"`
	GradeRecordDeletedAt gorm.DeletedAt `gorm:"column:grade_record_deleted_at;index"                                   json:"grade_record_deleted_at,omitempty"`
}

func (GradeRecordModel) TableName() string { return "grade_records" }
