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

// UserRepository is the only component issuing user queries. "Not found" is a
// nil entity, never an error; every storage failure crosses the boundary as a
// typed error.
type UserRepository interface {
	FindAll(ctx context.Context, filter model.UserFilter) (pagination.Page[model.User], error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, in model.UserCreateInput) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, in model.UserUpdateInput) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindAll(ctx context.Context, filter model.UserFilter) (pagination.Page[model.User], error) {
	query := r.db.WithContext(ctx).Model(&model.User{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern)
	}
	if filter.IsSuperAdmin != nil {
		query = query.Where("is_super_admin = ?", *filter.IsSuperAdmin)
	}

	// Count against a clone of the filtered query so both statements share
	// the same predicate.
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return pagination.Page[model.User]{}, translateError(err, "Error finding all users")
	}

	var users []model.User
	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at asc").Offset(offset).Limit(filter.Limit).Find(&users).Error; err != nil {
		return pagination.Page[model.User]{}, translateError(err, "Error finding all users")
	}

	return pagination.NewPage(users, total, filter.Page, filter.Limit), nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "Error finding user by id")
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "Error finding user by email")
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, in model.UserCreateInput) (*model.User, error) {
	user := userCreateModel(in)
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		return nil, translateError(result.Error, "Error creating user")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, in model.UserUpdateInput) (*model.User, error) {
	patch := userUpdatePatch(in)
	if len(patch) == 0 {
		// No-op update still reports the current state, or not-found for a
		// missing id, without issuing an UPDATE.
		return r.FindByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, translateError(result.Error, "Error updating user")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "Error deleting user")
	}

	if err := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Error deleting user")
	}
	return &user, nil
}
