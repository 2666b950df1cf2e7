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

type AppRepository interface {
	FindAll(ctx context.Context, filter model.AppFilter) (pagination.Page[model.App], error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.App, error)
	Create(ctx context.Context, in model.AppCreateInput) (*model.App, error)
	Update(ctx context.Context, id uuid.UUID, in model.AppUpdateInput) (*model.App, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.App, error)
}

type appRepository struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) AppRepository {
	return &appRepository{db: db}
}

func (r *appRepository) FindAll(ctx context.Context, filter model.AppFilter) (pagination.Page[model.App], error) {
	query := r.db.WithContext(ctx).Model(&model.App{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return pagination.Page[model.App]{}, translateError(err, "Error finding all apps")
	}

	var apps []model.App
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("name asc").Offset(offset).Limit(filter.Limit).Find(&apps).Error; err != nil {
		return pagination.Page[model.App]{}, translateError(err, "Error finding all apps")
	}

	return pagination.NewPage(apps, total, filter.Page, filter.Limit), nil
}

func (r *appRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.App, error) {
	var app model.App
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "Error finding app by id")
	}
	return &app, nil
}

func (r *appRepository) Create(ctx context.Context, in model.AppCreateInput) (*model.App, error) {
	app := appCreateModel(in)
	result := r.db.WithContext(ctx).Create(app)
	if result.Error != nil {
		return nil, translateError(result.Error, "Error creating app")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return app, nil
}

func (r *appRepository) Update(ctx context.Context, id uuid.UUID, in model.AppUpdateInput) (*model.App, error) {
	patch := appUpdatePatch(in)
	if len(patch) == 0 {
		return r.FindByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&model.App{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, translateError(result.Error, "Error updating app")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *appRepository) Delete(ctx context.Context, id uuid.UUID) (*model.App, error) {
	var app model.App
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "Error deleting app")
	}

	if err := r.db.WithContext(ctx).Delete(&model.App{}, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Error deleting app")
	}
	return &app, nil
}
