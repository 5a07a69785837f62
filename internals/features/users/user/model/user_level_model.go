// file: internals/features/users/user/model/user_level_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLevelModel mengikat staf (principal/chairperson) ke jenjang yang dia
// pegang. Isinya masuk klaim level_ids di token saat login.
type UserLevelModel struct {
	UserLevelID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_level_id" json:"user_level_id"`
	UserLevelUserID  uuid.UUID `gorm:"type:uuid;not null;index;column:user_level_user_id"                  json:"user_level_user_id"`
	UserLevelLevelID uuid.UUID `gorm:"type:uuid;not null;index;column:user_level_level_id"                 json:"user_level_level_id"`

	UserLevelCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_level_created_at" json:"user_level_created_at"`
}

func (UserLevelModel) TableName() string { return "user_levels" }
