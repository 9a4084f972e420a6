package projects

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
)

type projectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes portfolio operations. Projects have no draft state; every
// row is public.
type Service interface {
	List(ctx context.Context) ([]ProjectDTO, error)
	Create(ctx context.Context, input CreateProjectInput) (*ProjectDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*ProjectDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo projectRepository
}

// NewService builds a project service with the provided repository.
func NewService(repo projectRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("project repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ProjectDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list projects")
	}
	dtos := make([]ProjectDTO, len(items))
	for i := range items {
		dtos[i] = *toDTO(&items[i])
	}
	return dtos, nil
}

func (s *service) Create(ctx context.Context, input CreateProjectInput) (*ProjectDTO, error) {
	project := &models.Project{
		Title:       input.Title,
		Client:      input.Client,
		Category:    input.Category,
		Year:        input.Year,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Challenge:   input.Challenge,
		Outcome:     input.Outcome,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create project")
	}
	return toDTO(project), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*ProjectDTO, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load project")
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Client != nil {
		project.Client = *input.Client
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Year != nil {
		project.Year = *input.Year
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.ImageURL != nil {
		project.ImageURL = *input.ImageURL
	}
	if input.Challenge != nil {
		project.Challenge = *input.Challenge
	}
	if input.Outcome != nil {
		project.Outcome = *input.Outcome
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update project")
	}
	return toDTO(project), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete project")
	}
	return nil
}
