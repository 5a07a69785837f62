// file: internals/features/school/academics/honors/model/honor_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// HonorTypeModel: jenis predikat (cum laude, dst). Reference data,
// di-seed dari luar.
type HonorTypeModel struct {
	HonorTypeID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:honor_type_id" json:"honor_type_id"`
	HonorTypeCode string    `gorm:"type:varchar(40);not null;uniqueIndex;column:honor_type_code"        json:"honor_type_code"`
	HonorTypeName string    `gorm:"type:varchar(80);not null;column:honor_type_name"                    json:"honor_type_name"`

	HonorTypeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:honor_type_created_at" json:"honor_type_created_at"`
}

func (HonorTypeModel) TableName() string { return "honor_types" }
