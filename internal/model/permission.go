package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Permission is a named capability owned by exactly one app, granted to users
// either through roles or directly.
type Permission struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"type:varchar(255);not null" json:"name"`
	AppID uuid.UUID `gorm:"type:uuid;not null;index" json:"appId"`
	App   *App      `gorm:"foreignKey:AppID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (p *Permission) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
