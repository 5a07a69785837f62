// file: internals/features/school/academics/assignments/dto/assignment_dto.go
package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/assignments/model"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateAdviserAssignmentRequest struct {
	UserID     uuid.UUID `json:"adviser_assignment_user_id"     validate:"required"`
	SubjectID  uuid.UUID `json:"adviser_assignment_subject_id"  validate:"required"`
	LevelID    uuid.UUID `json:"adviser_assignment_level_id"    validate:"required"`
	SchoolYear string    `json:"adviser_assignment_school_year" validate:"required,len=9"`
}

func (r CreateAdviserAssignmentRequest) ToModel() model.AdviserAssignmentModel {
	return model.AdviserAssignmentModel{
		AdviserAssignmentUserID:     r.UserID,
		AdviserAssignmentSubjectID:  r.SubjectID,
		AdviserAssignmentLevelID:    r.LevelID,
		AdviserAssignmentSchoolYear: r.SchoolYear,
		AdviserAssignmentIsActive:   true,
	}
}

type CreateSubjectRequest struct {
	Code       string  `json:"subject_code"       validate:"required,max=40"`
	Name       string  `json:"subject_name"       validate:"required,max=120"`
	Department *string `json:"subject_department" validate:"omitempty,max=80"`
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectCode:       r.Code,
		SubjectName:       r.Name,
		SubjectDepartment: r.Department,
		SubjectIsActive:   true,
	}
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type AdviserAssignmentResponse struct {
	ID         uuid.UUID `json:"adviser_assignment_id"`
	UserID     uuid.UUID `json:"adviser_assignment_user_id"`
	SubjectID  uuid.UUID `json:"adviser_assignment_subject_id"`
	LevelID    uuid.UUID `json:"adviser_assignment_level_id"`
	SchoolYear string    `json:"adviser_assignment_school_year"`
	IsActive   bool      `json:"adviser_assignment_is_active"`
}

func FromAdviserAssignmentModel(m model.AdviserAssignmentModel) AdviserAssignmentResponse {
	return AdviserAssignmentResponse{
		ID:         m.AdviserAssignmentID,
		UserID:     m.AdviserAssignmentUserID,
		SubjectID:  m.AdviserAssignmentSubjectID,
		LevelID:    m.AdviserAssignmentLevelID,
		SchoolYear: m.AdviserAssignmentSchoolYear,
		IsActive:   m.AdviserAssignmentIsActive,
	}
}

func FromAdviserAssignmentModels(ms []model.AdviserAssignmentModel) []AdviserAssignmentResponse {
	out := make([]AdviserAssignmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromAdviserAssignmentModel(m))
	}
	return out
}
