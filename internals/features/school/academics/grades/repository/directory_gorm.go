// file: internals/features/school/academics/grades/repository/directory_gorm.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
	levelService "sekolahku_backend/internals/features/school/academics/levels/service"
	termModel "sekolahku_backend/internals/features/school/academics/terms/model"
)

// LevelDirectoryGorm menerjemahkan id jenjang ke key-nya. Reference data
// kecil dan nyaris tak berubah — cukup query langsung, tanpa cache.
type LevelDirectoryGorm struct {
	DB *gorm.DB
}

func NewLevelDirectoryGorm(db *gorm.DB) *LevelDirectoryGorm {
	return &LevelDirectoryGorm{DB: db}
}

func (r *LevelDirectoryGorm) KeyByID(ctx context.Context, levelID uuid.UUID) (string, error) {
	var m levelModel.AcademicLevelModel
	if err := r.DB.WithContext(ctx).
		Select("academic_level_key").
		Where("academic_level_id = ?", levelID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", levelService.ErrUnknownLevel
		}
		return "", err
	}
	return m.AcademicLevelKey, nil
}

// PeriodDirectoryGorm membaca periode satu jenjang utk resolver.
type PeriodDirectoryGorm struct {
	DB *gorm.DB
}

func NewPeriodDirectoryGorm(db *gorm.DB) *PeriodDirectoryGorm {
	return &PeriodDirectoryGorm{DB: db}
}

func (r *PeriodDirectoryGorm) ListByLevel(ctx context.Context, levelID uuid.UUID) ([]termModel.GradingPeriodModel, error) {
	var out []termModel.GradingPeriodModel
	if err := r.DB.WithContext(ctx).
		Where("grading_period_level_id = ?", levelID).
		Order("grading_period_sort_order ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
