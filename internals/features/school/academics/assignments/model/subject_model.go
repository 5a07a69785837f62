// file: internals/features/school/academics/assignments/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	// Identitas
	SubjectCode       string  `gorm:"type:varchar(40);not null;uniqueIndex;column:subject_code" json:"subject_code"`
	SubjectName       string  `gorm:"type:varchar(120);not null;column:subject_name"            json:"subject_name"`
	SubjectDepartment *string `gorm:"type:varchar(80);column:subject_department"                json:"subject_department,omitempty"`

	// Status & audit
	SubjectIsActive  bool           `gorm:"not null;default:true;column:subject_is_active"                    json:"subject_is_active"`
	SubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index"                                   json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
