package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GrantRepository manages the association rows between users, apps, roles and
// permissions. Add operations surface duplicate pairs as typed conflicts;
// Remove operations report whether a row was actually deleted.
type GrantRepository interface {
	AddUserApp(ctx context.Context, userID, appID uuid.UUID) error
	RemoveUserApp(ctx context.Context, userID, appID uuid.UUID) (bool, error)
	HasUserApp(ctx context.Context, userID, appID uuid.UUID) (bool, error)

	AddUserRole(ctx context.Context, userID, roleID uuid.UUID) error
	RemoveUserRole(ctx context.Context, userID, roleID uuid.UUID) (bool, error)

	AddRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) error
	RemoveRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error)

	AddUserPermission(ctx context.Context, userID, permissionID uuid.UUID) error
	RemoveUserPermission(ctx context.Context, userID, permissionID uuid.UUID) (bool, error)

	EffectivePermissions(ctx context.Context, userID, appID uuid.UUID) ([]model.Permission, error)
}

type grantRepository struct {
	db *gorm.DB
}

func NewGrantRepository(db *gorm.DB) GrantRepository {
	return &grantRepository{db: db}
}

func (r *grantRepository) AddUserApp(ctx context.Context, userID, appID uuid.UUID) error {
	grant := model.UserApp{UserID: userID, AppID: appID}
	if err := r.db.WithContext(ctx).Create(&grant).Error; err != nil {
		return translateError(err, "Error granting app access")
	}
	return nil
}

func (r *grantRepository) RemoveUserApp(ctx context.Context, userID, appID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND app_id = ?", userID, appID).
		Delete(&model.UserApp{})
	if result.Error != nil {
		return false, translateError(result.Error, "Error revoking app access")
	}
	return result.RowsAffected > 0, nil
}

func (r *grantRepository) HasUserApp(ctx context.Context, userID, appID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserApp{}).
		Where("user_id = ? AND app_id = ?", userID, appID).
		Count(&count).Error
	if err != nil {
		return false, translateError(err, "Error checking app access")
	}
	return count > 0, nil
}

func (r *grantRepository) AddUserRole(ctx context.Context, userID, roleID uuid.UUID) error {
	grant := model.UserRole{UserID: userID, RoleID: roleID}
	if err := r.db.WithContext(ctx).Create(&grant).Error; err != nil {
		return translateError(err, "Error assigning role")
	}
	return nil
}

func (r *grantRepository) RemoveUserRole(ctx context.Context, userID, roleID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&model.UserRole{})
	if result.Error != nil {
		return false, translateError(result.Error, "Error unassigning role")
	}
	return result.RowsAffected > 0, nil
}

func (r *grantRepository) AddRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) error {
	grant := model.RolePermission{RoleID: roleID, PermissionID: permissionID}
	if err := r.db.WithContext(ctx).Create(&grant).Error; err != nil {
		return translateError(err, "Error granting permission to role")
	}
	return nil
}

func (r *grantRepository) RemoveRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&model.RolePermission{})
	if result.Error != nil {
		return false, translateError(result.Error, "Error revoking permission from role")
	}
	return result.RowsAffected > 0, nil
}

func (r *grantRepository) AddUserPermission(ctx context.Context, userID, permissionID uuid.UUID) error {
	grant := model.UserPermission{UserID: userID, PermissionID: permissionID}
	if err := r.db.WithContext(ctx).Create(&grant).Error; err != nil {
		return translateError(err, "Error granting permission to user")
	}
	return nil
}

func (r *grantRepository) RemoveUserPermission(ctx context.Context, userID, permissionID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND permission_id = ?", userID, permissionID).
		Delete(&model.UserPermission{})
	if result.Error != nil {
		return false, translateError(result.Error, "Error revoking permission from user")
	}
	return result.RowsAffected > 0, nil
}

// EffectivePermissions is the derived view for one (user, app) pair: the union
// of permissions granted through the app's roles and direct grants on
// permissions the app owns. The role branch filters on the role's owning app,
// so a role may carry permissions owned elsewhere. Checking the UserApp grant
// is the service's job.
func (r *grantRepository) EffectivePermissions(ctx context.Context, userID, appID uuid.UUID) ([]model.Permission, error) {
	var perms []model.Permission
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id, p.name, p.app_id FROM permissions p
		INNER JOIN role_permissions rp ON rp.permission_id = p.id
		INNER JOIN user_roles ur ON ur.role_id = rp.role_id
		INNER JOIN roles ro ON ro.id = ur.role_id
		WHERE ur.user_id = ? AND ro.app_id = ?
		UNION
		SELECT p.id, p.name, p.app_id FROM permissions p
		INNER JOIN user_permissions up ON up.permission_id = p.id
		WHERE up.user_id = ? AND p.app_id = ?
	`, userID, appID, userID, appID).Scan(&perms).Error
	if err != nil {
		return nil, translateError(err, "Error resolving effective permissions")
	}
	return perms, nil
}
