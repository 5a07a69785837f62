// file: internals/features/school/academics/levels/model/academic_level_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Kunci jenjang (vocabulary tertutup, jangan tambah tanpa update ScaleValidator)
const (
	LevelKeyElementary = "elementary"
	LevelKeyJuniorHigh = "junior_high"
	LevelKeySeniorHigh = "senior_high"
	LevelKeyCollege    = "college"
)

var AllLevelKeys = []string{
	LevelKeyElementary,
	LevelKeyJuniorHigh,
	LevelKeySeniorHigh,
	LevelKeyCollege,
}

// AcademicLevelModel adalah data referensi jenjang. Di-seed dari luar,
// read-only untuk engine nilai.
type AcademicLevelModel struct {
	AcademicLevelID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_level_id" json:"academic_level_id"`
	AcademicLevelKey  string    `gorm:"type:varchar(20);not null;uniqueIndex;column:academic_level_key"         json:"academic_level_key"`
	AcademicLevelName string    `gorm:"type:varchar(80);not null;column:academic_level_name"                    json:"academic_level_name"`

	AcademicLevelOrder    int  `gorm:"not null;default:0;column:academic_level_order"        json:"academic_level_order"`
	AcademicLevelIsActive bool `gorm:"not null;default:true;column:academic_level_is_active" json:"academic_level_is_active"`

	AcademicLevelCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:academic_level_created_at" json:"academic_level_created_at"`
	AcademicLevelUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:academic_level_updated_at" json:"academic_level_updated_at"`
}

func (AcademicLevelModel) TableName() string { return "academic_levels" }
