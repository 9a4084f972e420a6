package posts

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
)

type postRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	List(ctx context.Context, status *enums.ContentStatus) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes journal operations.
type Service interface {
	ListPublished(ctx context.Context) ([]PostDTO, error)
	ListAll(ctx context.Context) ([]PostDTO, error)
	Create(ctx context.Context, input CreatePostInput) (*PostDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*PostDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo postRepository
}

// NewService builds a post service with the provided repository.
func NewService(repo postRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("post repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListPublished(ctx context.Context) ([]PostDTO, error) {
	status := enums.ContentStatusPublished
	return s.list(ctx, &status)
}

func (s *service) ListAll(ctx context.Context) ([]PostDTO, error) {
	return s.list(ctx, nil)
}

func (s *service) list(ctx context.Context, status *enums.ContentStatus) ([]PostDTO, error) {
	items, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list posts")
	}
	dtos := make([]PostDTO, len(items))
	for i := range items {
		dtos[i] = *toDTO(&items[i])
	}
	return dtos, nil
}

func (s *service) Create(ctx context.Context, input CreatePostInput) (*PostDTO, error) {
	status := enums.ContentStatusDraft
	if input.Status != "" {
		status = enums.ContentStatus(input.Status)
	}

	post := &models.Post{
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		Author:      input.Author,
		Date:        input.Date,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		ReadingTime: input.ReadingTime,
		Status:      status,
	}
	if input.SEO != nil {
		post.SEO = *input.SEO
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create post")
	}
	return toDTO(post), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*PostDTO, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load post")
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.Date != nil {
		post.Date = *input.Date
	}
	if input.ImageURL != nil {
		post.ImageURL = *input.ImageURL
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.ReadingTime != nil {
		post.ReadingTime = *input.ReadingTime
	}
	if input.Status != nil {
		post.Status = enums.ContentStatus(*input.Status)
	}
	if input.SEO != nil {
		post.SEO = *input.SEO
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update post")
	}
	return toDTO(post), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete post")
	}
	return nil
}
