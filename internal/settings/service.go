package settings

import (
	"context"
	"fmt"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
)

type settingsRepository interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, settings *models.SiteSettings) error
}

// Service exposes storefront configuration operations.
type Service interface {
	Get(ctx context.Context) (*SettingsDTO, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*SettingsDTO, error)
	SellerAccountID(ctx context.Context) (string, error)
}

type service struct {
	repo settingsRepository
}

// NewService builds a settings service with the provided repository.
func NewService(repo settingsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context) (*SettingsDTO, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}
	return toDTO(settings), nil
}

func (s *service) Update(ctx context.Context, input UpdateSettingsInput) (*SettingsDTO, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}

	if input.BrandName != nil {
		settings.BrandName = *input.BrandName
	}
	if input.PrimaryColor != nil {
		settings.PrimaryColor = *input.PrimaryColor
	}
	if input.FontFamily != nil {
		settings.FontFamily = *input.FontFamily
	}
	if input.LogoURL != nil {
		settings.LogoURL = *input.LogoURL
	}
	if input.SocialLinks != nil {
		settings.SocialLinks = *input.SocialLinks
	}

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save settings")
	}
	return toDTO(settings), nil
}

// SellerAccountID returns the connected payment account id, or empty when the
// seller has not completed onboarding.
func (s *service) SellerAccountID(ctx context.Context) (string, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}
	if settings.SellerAccountID == nil {
		return "", nil
	}
	return *settings.SellerAccountID, nil
}
