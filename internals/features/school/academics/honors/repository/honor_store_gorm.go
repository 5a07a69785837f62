// file: internals/features/school/academics/honors/repository/honor_store_gorm.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/approval"
	"sekolahku_backend/internals/features/school/academics/honors/model"
	"sekolahku_backend/internals/features/school/academics/honors/service"
)

// HonorStoreGorm implementasi HonorStore di atas postgres.
type HonorStoreGorm struct {
	DB *gorm.DB
}

func NewHonorStoreGorm(db *gorm.DB) *HonorStoreGorm {
	return &HonorStoreGorm{DB: db}
}

func (r *HonorStoreGorm) FindByID(ctx context.Context, id uuid.UUID) (*model.HonorRecordModel, error) {
	var rec model.HonorRecordModel
	if err := r.DB.WithContext(ctx).
		Where("honor_record_id = ?", id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *HonorStoreGorm) ApplyTransition(ctx context.Context, id uuid.UUID, from, to approval.Status, stamp approval.Stamp) error {
	updates := map[string]interface{}{
		"honor_record_status":     to,
		"honor_record_updated_at": stamp.At,
	}
	switch to {
	case model.HonorStatusApproved:
		updates["honor_record_approved_by"] = stamp.ActorID
		updates["honor_record_approved_at"] = stamp.At
	case model.HonorStatusRejected:
		updates["honor_record_rejected_by"] = stamp.ActorID
		updates["honor_record_rejected_at"] = stamp.At
		updates["honor_record_reject_reason"] = stamp.Reason
	}

	res := r.DB.WithContext(ctx).
		Model(&model.HonorRecordModel{}).
		Where("honor_record_id = ? AND honor_record_status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var cnt int64
		if err := r.DB.WithContext(ctx).
			Model(&model.HonorRecordModel{}).
			Where("honor_record_id = ?", id).
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

func (r *HonorStoreGorm) ApplyOverride(ctx context.Context, id uuid.UUID, stamp approval.Stamp) error {
	res := r.DB.WithContext(ctx).
		Model(&model.HonorRecordModel{}).
		Where("honor_record_id = ?", id).
		Updates(map[string]interface{}{
			"honor_record_is_overridden":   true,
			"honor_record_overridden_by":   stamp.ActorID,
			"honor_record_overridden_at":   stamp.At,
			"honor_record_override_reason": stamp.Reason,
			"honor_record_updated_at":      stamp.At,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrRecordNotFound
	}
	return nil
}
