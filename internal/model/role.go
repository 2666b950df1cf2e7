package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is a named grouping of permissions owned by exactly one app.
// Deleting the app deletes its roles.
type Role struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"type:varchar(255);not null" json:"name"`
	AppID uuid.UUID `gorm:"type:uuid;not null;index" json:"appId"`
	App   *App      `gorm:"foreignKey:AppID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (r *Role) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
