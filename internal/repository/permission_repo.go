package repository

import (
	"context"
	"errors"
	"strings"

	"backend/internal/model"
	"backend/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PermissionRepository interface {
	FindAll(ctx context.Context, filter model.PermissionFilter) (pagination.Page[model.Permission], error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error)
	Create(ctx context.Context, in model.PermissionCreateInput) (*model.Permission, error)
	Update(ctx context.Context, id uuid.UUID, in model.PermissionUpdateInput) (*model.Permission, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Permission, error)
}

type permissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) FindAll(ctx context.Context, filter model.PermissionFilter) (pagination.Page[model.Permission], error) {
	query := r.db.WithContext(ctx).Model(&model.Permission{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}
	if filter.AppID != nil {
		query = query.Where("app_id = ?", *filter.AppID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return pagination.Page[model.Permission]{}, translateError(err, "Error finding all permissions")
	}

	var perms []model.Permission
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("name asc").Offset(offset).Limit(filter.Limit).Find(&perms).Error; err != nil {
		return pagination.Page[model.Permission]{}, translateError(err, "Error finding all permissions")
	}

	return pagination.NewPage(perms, total, filter.Page, filter.Limit), nil
}

func (r *permissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error) {
	var perm model.Permission
	if err := r.db.WithContext(ctx).First(&perm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "Error finding permission by id")
	}
	return &perm, nil
}

func (r *permissionRepository) Create(ctx context.Context, in model.PermissionCreateInput) (*model.Permission, error) {
	perm := permissionCreateModel(in)
	result := r.db.WithContext(ctx).Create(perm)
	if result.Error != nil {
		return nil, translateError(result.Error, "Error creating permission")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return perm, nil
}

func (r *permissionRepository) Update(ctx context.Context, id uuid.UUID, in model.PermissionUpdateInput) (*model.Permission, error) {
	patch := permissionUpdatePatch(in)
	if len(patch) == 0 {
		return r.FindByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&model.Permission{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, translateError(result.Error, "Error updating permission")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *permissionRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Permission, error) {
	var perm model.Permission
	if err := r.db.WithContext(ctx).First(&perm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "Error deleting permission")
	}

	if err := r.db.WithContext(ctx).Delete(&model.Permission{}, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Error deleting permission")
	}
	return &perm, nil
}
