package model

import (
	"backend/pkg/optional"

	"github.com/google/uuid"
)

// Input value objects: unvalidated carriers for create/update/list operations.
// Update inputs wrap every field in optional.Field so "not sent" and "sent as
// null" stay distinguishable.

type UserCreateInput struct {
	Email        string  `json:"email" binding:"required"`
	Name         string  `json:"name"`
	GoogleID     *string `json:"googleId"`
	IsSuperAdmin bool    `json:"isSuperAdmin"`
}

type UserUpdateInput struct {
	Email        optional.Field[string] `json:"email"`
	Name         optional.Field[string] `json:"name"`
	GoogleID     optional.Field[string] `json:"googleId"`
	IsSuperAdmin optional.Field[bool]   `json:"isSuperAdmin"`
}

type UserFilter struct {
	Page         int
	Limit        int
	Search       string
	IsSuperAdmin *bool
}

type AppCreateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type AppUpdateInput struct {
	Name        optional.Field[string] `json:"name"`
	Description optional.Field[string] `json:"description"`
}

type AppFilter struct {
	Page   int
	Limit  int
	Search string
}

type RoleCreateInput struct {
	Name  string    `json:"name" binding:"required"`
	AppID uuid.UUID `json:"appId" binding:"required"`
}

type RoleUpdateInput struct {
	Name optional.Field[string] `json:"name"`
}

type RoleFilter struct {
	Page   int
	Limit  int
	Search string
	AppID  *uuid.UUID
}

type PermissionCreateInput struct {
	Name  string    `json:"name" binding:"required"`
	AppID uuid.UUID `json:"appId" binding:"required"`
}

type PermissionUpdateInput struct {
	Name optional.Field[string] `json:"name"`
}

type PermissionFilter struct {
	Page   int
	Limit  int
	Search string
	AppID  *uuid.UUID
}
