package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbtypes "github.com/yarigadev/yariga-backend/pkg/db/types"
)

// User is an agent profile, created lazily on first sign-in and never
// deleted. Email acts as the natural key for find-or-create; dedup happens in
// the service layer, not as a storage constraint.
type User struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name          string            `gorm:"column:name;not null" json:"name"`
	Email         string            `gorm:"column:email;not null;index" json:"email"`
	Avatar        string            `gorm:"column:avatar" json:"avatar"`
	AllProperties dbtypes.UUIDArray `gorm:"column:all_properties;not null" json:"allProperties"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.AllProperties == nil {
		u.AllProperties = dbtypes.UUIDArray{}
	}
	return nil
}
