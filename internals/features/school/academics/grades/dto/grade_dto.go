// file: internals/features/school/academics/grades/dto/grade_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/approval"
	"sekolahku_backend/internals/features/school/academics/grades/model"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

// UpsertGradeRequest: student boleh uuid akun ATAU nomor induk; period_id
// dikirim mentah ("", "0", atau uuid) dan dinormalisasi service.
type UpsertGradeRequest struct {
	Student        string    `json:"student"                      validate:"required,max=60"`
	SubjectID      uuid.UUID `json:"grade_record_subject_id"      validate:"required"`
	LevelID        uuid.UUID `json:"grade_record_level_id"        validate:"required"`
	SchoolYear     string    `json:"grade_record_school_year"     validate:"required,len=9"`
	PeriodID       string    `json:"grade_record_period_id"       validate:"omitempty,max=40"`
	Value          float64   `json:"grade_record_value"           validate:"required"`
	YearOfStudy    *int      `json:"grade_record_year_of_study"   validate:"omitempty,min=1,max=14"`
	IsFinalAverage bool      `json:"grade_record_is_final_average"`
}

type ReturnGradeRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=1000"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type GradeRecordResponse struct {
	ID             uuid.UUID       `json:"grade_record_id"`
	StudentID      uuid.UUID       `json:"grade_record_student_id"`
	SubjectID      uuid.UUID       `json:"grade_record_subject_id"`
	LevelID        uuid.UUID       `json:"grade_record_level_id"`
	SchoolYear     string          `json:"grade_record_school_year"`
	PeriodID       *uuid.UUID      `json:"grade_record_period_id,omitempty"`
	YearOfStudy    *int            `json:"grade_record_year_of_study,omitempty"`
	Value          float64         `json:"grade_record_value"`
	IsFinalAverage bool            `json:"grade_record_is_final_average"`
	Status         approval.Status `json:"grade_record_status"`

	SubmittedBy  *uuid.UUID `json:"grade_record_submitted_by,omitempty"`
	SubmittedAt  *time.Time `json:"grade_record_submitted_at,omitempty"`
	ApprovedBy   *uuid.UUID `json:"grade_record_approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"grade_record_approved_at,omitempty"`
	ReturnedBy   *uuid.UUID `json:"grade_record_returned_by,omitempty"`
	ReturnedAt   *time.Time `json:"grade_record_returned_at,omitempty"`
	ReturnReason *string    `json:"grade_record_return_reason,omitempty"`

	CreatedAt time.Time `json:"grade_record_created_at"`
	UpdatedAt time.Time `json:"grade_record_updated_at"`
}

func FromGradeRecordModel(m model.GradeRecordModel) GradeRecordResponse {
	return GradeRecordResponse{
		ID:             m.GradeRecordID,
		StudentID:      m.GradeRecordStudentID,
		SubjectID:      m.GradeRecordSubjectID,
		LevelID:        m.GradeRecordLevelID,
		SchoolYear:     m.GradeRecordSchoolYear,
		PeriodID:       m.GradeRecordPeriodID,
		YearOfStudy:    m.GradeRecordYearOfStudy,
		Value:          m.GradeRecordValue,
		IsFinalAverage: m.GradeRecordIsFinalAverage,
		Status:         m.GradeRecordStatus,
		SubmittedBy:    m.GradeRecordSubmittedBy,
		SubmittedAt:    m.GradeRecordSubmittedAt,
		ApprovedBy:     m.GradeRecordApprovedBy,
		ApprovedAt:     m.GradeRecordApprovedAt,
		ReturnedBy:     m.GradeRecordReturnedBy,
		ReturnedAt:     m.GradeRecordReturnedAt,
		ReturnReason:   m.GradeRecordReturnReason,
		CreatedAt:      m.GradeRecordCreatedAt,
		UpdatedAt:      m.GradeRecordUpdatedAt,
	}
}

func FromGradeRecordModels(ms []model.GradeRecordModel) []GradeRecordResponse {
	out := make([]GradeRecordResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromGradeRecordModel(m))
	}
	return out
}

// UpsertGradeResponse membungkus record + flag created supaya klien tahu
// baris baru vs nilai tertimpa.
type UpsertGradeResponse struct {
	Created bool                `json:"created"`
	Record  GradeRecordResponse `json:"record"`
}
