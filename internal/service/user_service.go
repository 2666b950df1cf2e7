package service

import (
	"context"

	"backend/internal/apperror"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/pagination"

	"github.com/google/uuid"
)

// UserService enforces existence semantics on top of the repository and
// normalizes every failure into a typed error. No further business rules
// live here.
type UserService interface {
	ListUsers(ctx context.Context, filter model.UserFilter) (pagination.Page[model.User], error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, in model.UserCreateInput) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in model.UserUpdateInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context, filter model.UserFilter) (pagination.Page[model.User], error) {
	page, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return pagination.Page[model.User]{}, apperror.From(err)
	}
	return page, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.From(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found", nil)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.From(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found", nil)
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, in model.UserCreateInput) (*model.User, error) {
	user, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, apperror.From(err)
	}
	if user == nil {
		return nil, apperror.Internal("Failed to create user", nil)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, in model.UserUpdateInput) (*model.User, error) {
	user, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, apperror.From(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found", nil)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, apperror.From(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found", nil)
	}
	return user, nil
}
