package service

import (
	"context"

	"backend/internal/apperror"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/pagination"

	"github.com/google/uuid"
)

type RoleService interface {
	ListRoles(ctx context.Context, filter model.RoleFilter) (pagination.Page[model.Role], error)
	GetRoleByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	CreateRole(ctx context.Context, in model.RoleCreateInput) (*model.Role, error)
	UpdateRole(ctx context.Context, id uuid.UUID, in model.RoleUpdateInput) (*model.Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) (*model.Role, error)
}

type roleService struct {
	repo repository.RoleRepository
	apps repository.AppRepository
}

func NewRoleService(repo repository.RoleRepository, apps repository.AppRepository) RoleService {
	return &roleService{repo: repo, apps: apps}
}

func (s *roleService) ListRoles(ctx context.Context, filter model.RoleFilter) (pagination.Page[model.Role], error) {
	page, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return pagination.Page[model.Role]{}, apperror.From(err)
	}
	return page, nil
}

func (s *roleService) GetRoleByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.From(err)
	}
	if role == nil {
		return nil, apperror.NotFound("Role not found", nil)
	}
	return role, nil
}

// CreateRole checks the owning app exists so a broken reference surfaces as
// not-found instead of a raw foreign key failure.
func (s *roleService) CreateRole(ctx context.Context, in model.RoleCreateInput) (*model.Role, error) {
	app, err := s.apps.FindByID(ctx, in.AppID)
	if err != nil {
		return nil, apperror.From(err)
	}
	if app == nil {
		return nil, apperror.NotFound("App not found", nil)
	}

	role, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, apperror.From(err)
	}
	if role == nil {
		return nil, apperror.Internal("Failed to create role", nil)
	}
	return role, nil
}

func (s *roleService) UpdateRole(ctx context.Context, id uuid.UUID, in model.RoleUpdateInput) (*model.Role, error) {
	role, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, apperror.From(err)
	}
	if role == nil {
		return nil, apperror.NotFound("Role not found", nil)
	}
	return role, nil
}

func (s *roleService) DeleteRole(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	role, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, apperror.From(err)
	}
	if role == nil {
		return nil, apperror.NotFound("Role not found", nil)
	}
	return role, nil
}
