package products

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
)

type productRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, status *enums.ContentStatus) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes product catalog operations.
type Service interface {
	ListPublished(ctx context.Context) ([]ProductDTO, error)
	ListAll(ctx context.Context) ([]ProductDTO, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo productRepository
}

// NewService builds a product service with the provided repository.
func NewService(repo productRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListPublished(ctx context.Context) ([]ProductDTO, error) {
	status := enums.ContentStatusPublished
	return s.list(ctx, &status)
}

func (s *service) ListAll(ctx context.Context) ([]ProductDTO, error) {
	return s.list(ctx, nil)
}

func (s *service) list(ctx context.Context, status *enums.ContentStatus) ([]ProductDTO, error) {
	items, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	dtos := make([]ProductDTO, len(items))
	for i := range items {
		dtos[i] = *NewProductDTO(&items[i])
	}
	return dtos, nil
}

// GetPublished loads a single published listing. Drafts are indistinguishable
// from missing rows on the public surface.
func (s *service) GetPublished(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Status != enums.ContentStatusPublished {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return NewProductDTO(product), nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	priceCents, err := parsePriceCents(input.Price)
	if err != nil {
		return nil, err
	}

	status := enums.ContentStatusDraft
	if input.Status != "" {
		status = enums.ContentStatus(input.Status)
	}

	product := &models.Product{
		Name:        input.Name,
		PriceCents:  priceCents,
		Description: input.Description,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Status:      status,
	}
	if input.SEO != nil {
		product.SEO = *input.SEO
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return NewProductDTO(product), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		priceCents, parseErr := parsePriceCents(*input.Price)
		if parseErr != nil {
			return nil, parseErr
		}
		product.PriceCents = priceCents
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Status != nil {
		product.Status = enums.ContentStatus(*input.Status)
	}
	if input.SEO != nil {
		product.SEO = *input.SEO
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return NewProductDTO(product), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func (s *service) findByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func parsePriceCents(raw string) (int64, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "price must be a decimal number")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}
	cents := price.Mul(decimal.NewFromInt(100)).Round(0)
	if cents.IntPart() <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "price rounds to zero")
	}
	return cents.IntPart(), nil
}
