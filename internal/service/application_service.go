package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nurpe/apper-api/internal/model"
	"github.com/nurpe/apper-api/internal/repository"
)

type ApplicationService struct {
	repo *repository.ApplicationRepository
}

func NewApplicationService(repo *repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

func (s *ApplicationService) Create(ctx context.Context, app *model.Application) (*model.Application, error) {
	app.Name = strings.TrimSpace(app.Name)
	if app.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if app.CodeStack != nil && !app.CodeStack.Valid() {
		return nil, fmt.Errorf("%w: unsupported codeStack %q", ErrInvalidInput, *app.CodeStack)
	}
	if app.DBType != nil && !app.DBType.Valid() {
		return nil, fmt.Errorf("%w: unsupported dbType %q", ErrInvalidInput, *app.DBType)
	}
	app.ID = 0
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, translate(err)
	}
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context) ([]model.Application, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(apps), nil
}
