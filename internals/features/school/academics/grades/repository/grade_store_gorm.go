// file: internals/features/school/academics/grades/repository/grade_store_gorm.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/approval"
	"sekolahku_backend/internals/features/school/academics/grades/model"
	"sekolahku_backend/internals/features/school/academics/grades/service"
)

// GradeStoreGorm implementasi GradeStore di atas postgres. Constraint unik
// kunci identitas (uq_grade_records_identity) adalah otoritas tunggal utk
// race create-vs-create; 23505 diterjemahkan ke ErrDuplicateRecord.
type GradeStoreGorm struct {
	DB *gorm.DB
}

func NewGradeStoreGorm(db *gorm.DB) *GradeStoreGorm {
	return &GradeStoreGorm{DB: db}
}

func (r *GradeStoreGorm) FindByKey(ctx context.Context, key service.RecordKey) (*model.GradeRecordModel, error) {
	q := r.DB.WithContext(ctx).
		Where(`
            grade_record_student_id = ?
            AND grade_record_subject_id = ?
            AND grade_record_level_id = ?
            AND grade_record_school_year = ?
        `, key.StudentID, key.SubjectID, key.LevelID, key.SchoolYear)

	if key.PeriodID == uuid.Nil {
		q = q.Where("grade_record_period_id IS NULL")
	} else {
		q = q.Where("grade_record_period_id = ?", key.PeriodID)
	}

	var rec model.GradeRecordModel
	if err := q.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *GradeStoreGorm) FindByID(ctx context.Context, id uuid.UUID) (*model.GradeRecordModel, error) {
	var rec model.GradeRecordModel
	if err := r.DB.WithContext(ctx).
		Where("grade_record_id = ?", id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *GradeStoreGorm) Create(ctx context.Context, rec *model.GradeRecordModel) error {
	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			return service.ErrDuplicateRecord
		}
		return err
	}
	return nil
}

func (r *GradeStoreGorm) UpdateValue(ctx context.Context, id uuid.UUID, value float64, reopen bool) error {
	updates := map[string]interface{}{
		"grade_record_value":      value,
		"grade_record_updated_at": gorm.Expr("now()"),
	}
	if reopen {
		updates["grade_record_status"] = model.GradeStatusDraft
	}

	res := r.DB.WithContext(ctx).
		Model(&model.GradeRecordModel{}).
		Where("grade_record_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrRecordNotFound
	}
	return nil
}

// ApplyTransition menulis status + stamp dalam satu UPDATE ber-guard status
// asal: pembaca tidak pernah melihat status tanpa stamp-nya, dan dua
// transisi yang balapan hanya satu yang menang.
func (r *GradeStoreGorm) ApplyTransition(ctx context.Context, id uuid.UUID, from, to approval.Status, stamp approval.Stamp) error {
	updates := map[string]interface{}{
		"grade_record_status":     to,
		"grade_record_updated_at": stamp.At,
	}
	switch to {
	case model.GradeStatusSubmitted:
		updates["grade_record_submitted_by"] = stamp.ActorID
		updates["grade_record_submitted_at"] = stamp.At
	case model.GradeStatusApproved:
		updates["grade_record_approved_by"] = stamp.ActorID
		updates["grade_record_approved_at"] = stamp.At
	case model.GradeStatusReturned:
		updates["grade_record_returned_by"] = stamp.ActorID
		updates["grade_record_returned_at"] = stamp.At
		updates["grade_record_return_reason"] = stamp.Reason
	}

	res := r.DB.WithContext(ctx).
		Model(&model.GradeRecordModel{}).
		Where("grade_record_id = ? AND grade_record_status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Bedakan record hilang vs status sudah bergeser.
		var cnt int64
		if err := r.DB.WithContext(ctx).
			Model(&model.GradeRecordModel{}).
			Where("grade_record_id = ?", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return service.ErrRecordNotFound
		}
		return service.ErrInvalidTransition
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
