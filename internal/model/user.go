package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the central identity entity. Users authenticate through an external
// identity provider; GoogleID links the external account when present.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	GoogleID     *string   `gorm:"column:google_id;type:varchar(255)" json:"googleId"`
	IsSuperAdmin bool      `gorm:"not null;default:false" json:"isSuperAdmin"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BeforeCreate assigns the primary key so inserts work the same against
// Postgres and the sqlite test database.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
