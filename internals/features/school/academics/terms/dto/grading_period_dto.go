// file: internals/features/school/academics/terms/dto/grading_period_dto.go
package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/academics/terms/model"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateGradingPeriodRequest struct {
	Name      string     `json:"grading_period_name"       validate:"required,max=80"`
	LevelID   uuid.UUID  `json:"grading_period_level_id"   validate:"required"`
	ParentID  *uuid.UUID `json:"grading_period_parent_id"  validate:"omitempty"`
	SortOrder *int       `json:"grading_period_sort_order" validate:"omitempty,min=0"`
	IsActive  *bool      `json:"grading_period_is_active"  validate:"omitempty"`
}

func (r CreateGradingPeriodRequest) ToModel() model.GradingPeriodModel {
	m := model.GradingPeriodModel{
		GradingPeriodName:    r.Name,
		GradingPeriodLevelID: r.LevelID,
		GradingPeriodParentID: r.ParentID,
		GradingPeriodIsActive: true,
	}
	if r.SortOrder != nil {
		m.GradingPeriodSortOrder = *r.SortOrder
	}
	if r.IsActive != nil {
		m.GradingPeriodIsActive = *r.IsActive
	}
	return m
}

type UpdateGradingPeriodRequest struct {
	Name      *string    `json:"grading_period_name"       validate:"omitempty,max=80"`
	ParentID  *uuid.UUID `json:"grading_period_parent_id"  validate:"omitempty"`
	SortOrder *int       `json:"grading_period_sort_order" validate:"omitempty,min=0"`
	IsActive  *bool      `json:"grading_period_is_active"  validate:"omitempty"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type GradingPeriodResponse struct {
	ID        uuid.UUID  `json:"grading_period_id"`
	Name      string     `json:"grading_period_name"`
	LevelID   uuid.UUID  `json:"grading_period_level_id"`
	ParentID  *uuid.UUID `json:"grading_period_parent_id,omitempty"`
	SortOrder int        `json:"grading_period_sort_order"`
	IsActive  bool       `json:"grading_period_is_active"`
}

func FromGradingPeriodModel(m model.GradingPeriodModel) GradingPeriodResponse {
	return GradingPeriodResponse{
		ID:        m.GradingPeriodID,
		Name:      m.GradingPeriodName,
		LevelID:   m.GradingPeriodLevelID,
		ParentID:  m.GradingPeriodParentID,
		SortOrder: m.GradingPeriodSortOrder,
		IsActive:  m.GradingPeriodIsActive,
	}
}

func FromGradingPeriodModels(ms []model.GradingPeriodModel) []GradingPeriodResponse {
	out := make([]GradingPeriodResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromGradingPeriodModel(m))
	}
	return out
}
