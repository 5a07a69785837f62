// file: internals/features/school/academics/honors/dto/honor_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/approval"
	"sekolahku_backend/internals/features/school/academics/honors/model"
)

type HonorReasonRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=1000"`
}

type HonorRecordResponse struct {
	ID          uuid.UUID       `json:"honor_record_id"`
	StudentID   uuid.UUID       `json:"honor_record_student_id"`
	HonorTypeID uuid.UUID       `json:"honor_record_honor_type_id"`
	LevelID     uuid.UUID       `json:"honor_record_level_id"`
	SchoolYear  string          `json:"honor_record_school_year"`
	GPA         float64         `json:"honor_record_gpa"`
	Status      approval.Status `json:"honor_record_status"`

	ApprovedBy   *uuid.UUID `json:"honor_record_approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"honor_record_approved_at,omitempty"`
	RejectedBy   *uuid.UUID `json:"honor_record_rejected_by,omitempty"`
	RejectedAt   *time.Time `json:"honor_record_rejected_at,omitempty"`
	RejectReason *string    `json:"honor_record_reject_reason,omitempty"`

	IsOverridden   bool       `json:"honor_record_is_overridden"`
	OverriddenBy   *uuid.UUID `json:"honor_record_overridden_by,omitempty"`
	OverriddenAt   *time.Time `json:"honor_record_overridden_at,omitempty"`
	OverrideReason *string    `json:"honor_record_override_reason,omitempty"`

	CreatedAt time.Time `json:"honor_record_created_at"`
	UpdatedAt time.Time `json:"honor_record_updated_at"`
}

func FromHonorRecordModel(m model.HonorRecordModel) HonorRecordResponse {
	return HonorRecordResponse{
		ID:             m.HonorRecordID,
		StudentID:      m.HonorRecordStudentID,
		HonorTypeID:    m.HonorRecordHonorTypeID,
		LevelID:        m.HonorRecordLevelID,
		SchoolYear:     m.HonorRecordSchoolYear,
		GPA:            m.HonorRecordGPA,
		Status:         m.HonorRecordStatus,
		ApprovedBy:     m.HonorRecordApprovedBy,
		ApprovedAt:     m.HonorRecordApprovedAt,
		RejectedBy:     m.HonorRecordRejectedBy,
		RejectedAt:     m.HonorRecordRejectedAt,
		RejectReason:   m.HonorRecordRejectReason,
		IsOverridden:   m.HonorRecordIsOverridden,
		OverriddenBy:   m.HonorRecordOverriddenBy,
		OverriddenAt:   m.HonorRecordOverriddenAt,
		OverrideReason: m.HonorRecordOverrideReason,
		CreatedAt:      m.HonorRecordCreatedAt,
		UpdatedAt:      m.HonorRecordUpdatedAt,
	}
}

func FromHonorRecordModels(ms []model.HonorRecordModel) []HonorRecordResponse {
	out := make([]HonorRecordResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromHonorRecordModel(m))
	}
	return out
}
