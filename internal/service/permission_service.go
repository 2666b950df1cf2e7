package service

import (
	"context"

	"backend/internal/apperror"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/pagination"

	"github.com/google/uuid"
)

type PermissionService interface {
	ListPermissions(ctx context.Context, filter model.PermissionFilter) (pagination.Page[model.Permission], error)
	GetPermissionByID(ctx context.Context, id uuid.UUID) (*model.Permission, error)
	CreatePermission(ctx context.Context, in model.PermissionCreateInput) (*model.Permission, error)
	UpdatePermission(ctx context.Context, id uuid.UUID, in model.PermissionUpdateInput) (*model.Permission, error)
	DeletePermission(ctx context.Context, id uuid.UUID) (*model.Permission, error)
}

type permissionService struct {
	repo repository.PermissionRepository
	apps repository.AppRepository
}

func NewPermissionService(repo repository.PermissionRepository, apps repository.AppRepository) PermissionService {
	return &permissionService{repo: repo, apps: apps}
}

func (s *permissionService) ListPermissions(ctx context.Context, filter model.PermissionFilter) (pagination.Page[model.Permission], error) {
	page, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return pagination.Page[model.Permission]{}, apperror.From(err)
	}
	return page, nil
}

func (s *permissionService) GetPermissionByID(ctx context.Context, id uuid.UUID) (*model.Permission, error) {
	perm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.From(err)
	}
	if perm == nil {
		return nil, apperror.NotFound("Permission not found", nil)
	}
	return perm, nil
}

func (s *permissionService) CreatePermission(ctx context.Context, in model.PermissionCreateInput) (*model.Permission, error) {
	app, err := s.apps.FindByID(ctx, in.AppID)
	if err != nil {
		return nil, apperror.From(err)
	}
	if app == nil {
		return nil, apperror.NotFound("App not found", nil)
	}

	perm, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, apperror.From(err)
	}
	if perm == nil {
		return nil, apperror.Internal("Failed to create permission", nil)
	}
	return perm, nil
}

func (s *permissionService) UpdatePermission(ctx context.Context, id uuid.UUID, in model.PermissionUpdateInput) (*model.Permission, error) {
	perm, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, apperror.From(err)
	}
	if perm == nil {
		return nil, apperror.NotFound("Permission not found", nil)
	}
	return perm, nil
}

func (s *permissionService) DeletePermission(ctx context.Context, id uuid.UUID) (*model.Permission, error) {
	perm, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, apperror.From(err)
	}
	if perm == nil {
		return nil, apperror.NotFound("Permission not found", nil)
	}
	return perm, nil
}
