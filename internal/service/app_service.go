package service

import (
	"context"

	"backend/internal/apperror"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/pagination"

	"github.com/google/uuid"
)

type AppService interface {
	ListApps(ctx context.Context, filter model.AppFilter) (pagination.Page[model.App], error)
	GetAppByID(ctx context.Context, id uuid.UUID) (*model.App, error)
	CreateApp(ctx context.Context, in model.AppCreateInput) (*model.App, error)
	UpdateApp(ctx context.Context, id uuid.UUID, in model.AppUpdateInput) (*model.App, error)
	DeleteApp(ctx context.Context, id uuid.UUID) (*model.App, error)
}

type appService struct {
	repo repository.AppRepository
}

func NewAppService(repo repository.AppRepository) AppService {
	return &appService{repo: repo}
}

func (s *appService) ListApps(ctx context.Context, filter model.AppFilter) (pagination.Page[model.App], error) {
	page, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return pagination.Page[model.App]{}, apperror.From(err)
	}
	return page, nil
}

func (s *appService) GetAppByID(ctx context.Context, id uuid.UUID) (*model.App, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.From(err)
	}
	if app == nil {
		return nil, apperror.NotFound("App not found", nil)
	}
	return app, nil
}

func (s *appService) CreateApp(ctx context.Context, in model.AppCreateInput) (*model.App, error) {
	app, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, apperror.From(err)
	}
	if app == nil {
		return nil, apperror.Internal("Failed to create app", nil)
	}
	return app, nil
}

func (s *appService) UpdateApp(ctx context.Context, id uuid.UUID, in model.AppUpdateInput) (*model.App, error) {
	app, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, apperror.From(err)
	}
	if app == nil {
		return nil, apperror.NotFound("App not found", nil)
	}
	return app, nil
}

func (s *appService) DeleteApp(ctx context.Context, id uuid.UUID) (*model.App, error) {
	app, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, apperror.From(err)
	}
	if app == nil {
		return nil, apperror.NotFound("App not found", nil)
	}
	return app, nil
}
