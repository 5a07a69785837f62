// file: internals/features/school/academics/terms/model/grading_period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradingPeriodModel adalah irisan waktu penilaian. Hierarki dua tingkat:
// root = semester (atau kuarter berdiri sendiri), anak = sub-periode semester.
// Invariant: parent (kalau ada) harus satu jenjang dengan anaknya — dicek di
// controller admin saat create/update.
type GradingPeriodModel struct {
	GradingPeriodID      uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grading_period_id" json:"grading_period_id"`
	GradingPeriodName    string     `gorm:"type:varchar(80);not null;column:grading_period_name"                    json:"grading_period_name"`
	GradingPeriodLevelID uuid.UUID  `gorm:"type:uuid;not null;index;column:grading_period_level_id"                 json:"grading_period_level_id"`
	GradingPeriodParentID *uuid.UUID `gorm:"type:uuid;index;column:grading_period_parent_id"                        json:"grading_period_parent_id,omitempty"`

	GradingPeriodSortOrder int  `gorm:"not null;default:0;column:grading_period_sort_order"   json:"grading_period_sort_order"`
	GradingPeriodIsActive  bool `gorm:"not null;default:true;column:grading_period_is_active" json:"grading_period_is_active"`

	GradingPeriodCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grading_period_created_at" json:"grading_period_created_at"`
	GradingPeriodUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grading_period_updated_at" json:"grading_period_updated_at"`
	GradingPeriodDeletedAt gorm.DeletedAt `gorm:"column:grading_period_deleted_at;index"                                   json:"grading_period_deleted_at,omitempty"`
}

func (GradingPeriodModel) TableName() string { return "grading_periods" }

func (m GradingPeriodModel) IsRoot() bool { return m.GradingPeriodParentID == nil }
