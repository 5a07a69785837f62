// file: internals/features/school/academics/assignments/repository/assignment_store_gorm.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/assignments/model"
)

// AssignmentStoreGorm implementasi AssignmentStore di atas postgres.
type AssignmentStoreGorm struct {
	DB *gorm.DB
}

func NewAssignmentStoreGorm(db *gorm.DB) *AssignmentStoreGorm {
	return &AssignmentStoreGorm{DB: db}
}

func (r *AssignmentStoreGorm) HasActiveAssignment(ctx context.Context, adviserID, subjectID uuid.UUID, schoolYear string) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).
		Model(&model.AdviserAssignmentModel{}).
		Where(`
            adviser_assignment_user_id = ?
            AND adviser_assignment_subject_id = ?
            AND adviser_assignment_school_year = ?
            AND adviser_assignment_is_active
            AND adviser_assignment_deleted_at IS NULL
        `, adviserID, subjectID, schoolYear).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
