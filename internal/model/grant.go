package model

import "github.com/google/uuid"

// Association rows. Every foreign key cascades on delete so removing a user,
// app, role or permission removes the rows referencing it.

// UserApp grants a user access to an app.
type UserApp struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	AppID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"appId"`
	User   *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	App    *App      `gorm:"foreignKey:AppID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// UserRole assigns a role to a user; a user may hold roles across apps.
type UserRole struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"roleId"`
	User   *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Role   *Role     `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// RolePermission grants a permission to every user holding the role.
type RolePermission struct {
	RoleID       uuid.UUID   `gorm:"type:uuid;primaryKey" json:"roleId"`
	PermissionID uuid.UUID   `gorm:"type:uuid;primaryKey" json:"permissionId"`
	Role         *Role       `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Permission   *Permission `gorm:"foreignKey:PermissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// UserPermission is a direct grant bypassing roles.
type UserPermission struct {
	UserID       uuid.UUID   `gorm:"type:uuid;primaryKey" json:"userId"`
	PermissionID uuid.UUID   `gorm:"type:uuid;primaryKey" json:"permissionId"`
	User         *User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Permission   *Permission `gorm:"foreignKey:PermissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
