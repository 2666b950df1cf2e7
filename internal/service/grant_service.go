package service

import (
	"context"

	"backend/internal/apperror"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

// GrantService manages the many-to-many associations. Every grant verifies
// its referenced entities first so a dangling id surfaces as not-found rather
// than a foreign key failure; removing a grant that does not exist is
// not-found as well.
type GrantService interface {
	GrantAppAccess(ctx context.Context, userID, appID uuid.UUID) error
	RevokeAppAccess(ctx context.Context, userID, appID uuid.UUID) error
	AssignRole(ctx context.Context, userID, roleID uuid.UUID) error
	UnassignRole(ctx context.Context, userID, roleID uuid.UUID) error
	GrantRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) error
	RevokeRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) error
	GrantUserPermission(ctx context.Context, userID, permissionID uuid.UUID) error
	RevokeUserPermission(ctx context.Context, userID, permissionID uuid.UUID) error
	EffectivePermissions(ctx context.Context, userID, appID uuid.UUID) ([]model.Permission, error)
}

type grantService struct {
	grants repository.GrantRepository
	users  repository.UserRepository
	apps   repository.AppRepository
	roles  repository.RoleRepository
	perms  repository.PermissionRepository
}

func NewGrantService(
	grants repository.GrantRepository,
	users repository.UserRepository,
	apps repository.AppRepository,
	roles repository.RoleRepository,
	perms repository.PermissionRepository,
) GrantService {
	return &grantService{grants: grants, users: users, apps: apps, roles: roles, perms: perms}
}

func (s *grantService) requireUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return apperror.From(err)
	}
	if user == nil {
		return apperror.NotFound("User not found", nil)
	}
	return nil
}

func (s *grantService) requireApp(ctx context.Context, id uuid.UUID) error {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return apperror.From(err)
	}
	if app == nil {
		return apperror.NotFound("App not found", nil)
	}
	return nil
}

func (s *grantService) requireRole(ctx context.Context, id uuid.UUID) error {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return apperror.From(err)
	}
	if role == nil {
		return apperror.NotFound("Role not found", nil)
	}
	return nil
}

func (s *grantService) requirePermission(ctx context.Context, id uuid.UUID) error {
	perm, err := s.perms.FindByID(ctx, id)
	if err != nil {
		return apperror.From(err)
	}
	if perm == nil {
		return apperror.NotFound("Permission not found", nil)
	}
	return nil
}

func (s *grantService) GrantAppAccess(ctx context.Context, userID, appID uuid.UUID) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	if err := s.requireApp(ctx, appID); err != nil {
		return err
	}
	if err := s.grants.AddUserApp(ctx, userID, appID); err != nil {
		return apperror.From(err)
	}
	return nil
}

func (s *grantService) RevokeAppAccess(ctx context.Context, userID, appID uuid.UUID) error {
	removed, err := s.grants.RemoveUserApp(ctx, userID, appID)
	if err != nil {
		return apperror.From(err)
	}
	if !removed {
		return apperror.NotFound("App access grant not found", nil)
	}
	return nil
}

func (s *grantService) AssignRole(ctx context.Context, userID, roleID uuid.UUID) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	if err := s.requireRole(ctx, roleID); err != nil {
		return err
	}
	if err := s.grants.AddUserRole(ctx, userID, roleID); err != nil {
		return apperror.From(err)
	}
	return nil
}

func (s *grantService) UnassignRole(ctx context.Context, userID, roleID uuid.UUID) error {
	removed, err := s.grants.RemoveUserRole(ctx, userID, roleID)
	if err != nil {
		return apperror.From(err)
	}
	if !removed {
		return apperror.NotFound("Role assignment not found", nil)
	}
	return nil
}

func (s *grantService) GrantRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) error {
	if err := s.requireRole(ctx, roleID); err != nil {
		return err
	}
	if err := s.requirePermission(ctx, permissionID); err != nil {
		return err
	}
	if err := s.grants.AddRolePermission(ctx, roleID, permissionID); err != nil {
		return apperror.From(err)
	}
	return nil
}

func (s *grantService) RevokeRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) error {
	removed, err := s.grants.RemoveRolePermission(ctx, roleID, permissionID)
	if err != nil {
		return apperror.From(err)
	}
	if !removed {
		return apperror.NotFound("Role permission grant not found", nil)
	}
	return nil
}

func (s *grantService) GrantUserPermission(ctx context.Context, userID, permissionID uuid.UUID) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	if err := s.requirePermission(ctx, permissionID); err != nil {
		return err
	}
	if err := s.grants.AddUserPermission(ctx, userID, permissionID); err != nil {
		return apperror.From(err)
	}
	return nil
}

func (s *grantService) RevokeUserPermission(ctx context.Context, userID, permissionID uuid.UUID) error {
	removed, err := s.grants.RemoveUserPermission(ctx, userID, permissionID)
	if err != nil {
		return apperror.From(err)
	}
	if !removed {
		return apperror.NotFound("User permission grant not found", nil)
	}
	return nil
}

// EffectivePermissions requires an active app access grant before exposing
// the derived view.
func (s *grantService) EffectivePermissions(ctx context.Context, userID, appID uuid.UUID) ([]model.Permission, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.requireApp(ctx, appID); err != nil {
		return nil, err
	}

	hasAccess, err := s.grants.HasUserApp(ctx, userID, appID)
	if err != nil {
		return nil, apperror.From(err)
	}
	if !hasAccess {
		return nil, apperror.Forbidden("User does not have access to this app", nil)
	}

	perms, err := s.grants.EffectivePermissions(ctx, userID, appID)
	if err != nil {
		return nil, apperror.From(err)
	}
	return perms, nil
}
