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

type RoleRepository interface {
	FindAll(ctx context.Context, filter model.RoleFilter) (pagination.Page[model.Role], error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	Create(ctx context.Context, in model.RoleCreateInput) (*model.Role, error)
	Update(ctx context.Context, id uuid.UUID, in model.RoleUpdateInput) (*model.Role, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindAll(ctx context.Context, filter model.RoleFilter) (pagination.Page[model.Role], error) {
	query := r.db.WithContext(ctx).Model(&model.Role{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}
	if filter.AppID != nil {
		query = query.Where("app_id = ?", *filter.AppID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return pagination.Page[model.Role]{}, translateError(err, "Error finding all roles")
	}

	var roles []model.Role
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("name asc").Offset(offset).Limit(filter.Limit).Find(&roles).Error; err != nil {
		return pagination.Page[model.Role]{}, translateError(err, "Error finding all roles")
	}

	return pagination.NewPage(roles, total, filter.Page, filter.Limit), nil
}

func (r *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "Error finding role by id")
	}
	return &role, nil
}

func (r *roleRepository) Create(ctx context.Context, in model.RoleCreateInput) (*model.Role, error) {
	role := roleCreateModel(in)
	result := r.db.WithContext(ctx).Create(role)
	if result.Error != nil {
		return nil, translateError(result.Error, "Error creating role")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return role, nil
}

func (r *roleRepository) Update(ctx context.Context, id uuid.UUID, in model.RoleUpdateInput) (*model.Role, error) {
	patch := roleUpdatePatch(in)
	if len(patch) == 0 {
		return r.FindByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&model.Role{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, translateError(result.Error, "Error updating role")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *roleRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "Error deleting role")
	}

	if err := r.db.WithContext(ctx).Delete(&model.Role{}, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Error deleting role")
	}
	return &role, nil
}
