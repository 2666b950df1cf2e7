package repository

import "backend/internal/model"

// Persistence mappers: creation inputs map totally onto a fresh model; update
// inputs map only the supplied fields onto a column patch so a partial update
// touches nothing else. An update with zero supplied fields yields an empty
// patch. Explicit null clears nullable columns only.

func userCreateModel(in model.UserCreateInput) *model.User {
	return &model.User{
		Email:        in.Email,
		Name:         in.Name,
		GoogleID:     in.GoogleID,
		IsSuperAdmin: in.IsSuperAdmin,
	}
}

func userUpdatePatch(in model.UserUpdateInput) map[string]any {
	patch := map[string]any{}
	if v, ok := in.Email.Value(); ok {
		patch["email"] = v
	}
	if v, ok := in.Name.Value(); ok {
		patch["name"] = v
	}
	if in.GoogleID.Present() {
		if in.GoogleID.IsNull() {
			patch["google_id"] = nil
		} else if v, ok := in.GoogleID.Value(); ok {
			patch["google_id"] = v
		}
	}
	if v, ok := in.IsSuperAdmin.Value(); ok {
		patch["is_super_admin"] = v
	}
	return patch
}

func appCreateModel(in model.AppCreateInput) *model.App {
	return &model.App{
		Name:        in.Name,
		Description: in.Description,
	}
}

func appUpdatePatch(in model.AppUpdateInput) map[string]any {
	patch := map[string]any{}
	if v, ok := in.Name.Value(); ok {
		patch["name"] = v
	}
	if v, ok := in.Description.Value(); ok {
		patch["description"] = v
	}
	return patch
}

func roleCreateModel(in model.RoleCreateInput) *model.Role {
	return &model.Role{
		Name:  in.Name,
		AppID: in.AppID,
	}
}

func roleUpdatePatch(in model.RoleUpdateInput) map[string]any {
	patch := map[string]any{}
	if v, ok := in.Name.Value(); ok {
		patch["name"] = v
	}
	return patch
}

func permissionCreateModel(in model.PermissionCreateInput) *model.Permission {
	return &model.Permission{
		Name:  in.Name,
		AppID: in.AppID,
	}
}

func permissionUpdatePatch(in model.PermissionUpdateInput) map[string]any {
	patch := map[string]any{}
	if v, ok := in.Name.Value(); ok {
		patch["name"] = v
	}
	return patch
}
