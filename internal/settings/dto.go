package settings

import (
	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/types"
)

// SettingsDTO is the API shape of the storefront configuration.
type SettingsDTO struct {
	BrandName       string            `json:"brand_name"`
	PrimaryColor    string            `json:"primary_color"`
	FontFamily      string            `json:"font_family"`
	LogoURL         string            `json:"logo_url,omitempty"`
	SocialLinks     types.SocialLinks `json:"social_links"`
	SellerConnected bool              `json:"seller_connected"`
}

// UpdateSettingsInput captures the mutable storefront fields. The seller
// account id is deliberately absent: only the onboarding callback writes it.
type UpdateSettingsInput struct {
	BrandName    *string            `json:"brand_name" validate:"omitempty,min=1,max=120"`
	PrimaryColor *string            `json:"primary_color" validate:"omitempty,min=1,max=32"`
	FontFamily   *string            `json:"font_family" validate:"omitempty,min=1,max=64"`
	LogoURL      *string            `json:"logo_url" validate:"omitempty,url"`
	SocialLinks  *types.SocialLinks `json:"social_links"`
}

func toDTO(m *models.SiteSettings) *SettingsDTO {
	if m == nil {
		return nil
	}
	dto := &SettingsDTO{
		BrandName:       m.BrandName,
		PrimaryColor:    m.PrimaryColor,
		FontFamily:      m.FontFamily,
		LogoURL:         m.LogoURL,
		SocialLinks:     m.SocialLinks,
		SellerConnected: m.SellerAccountID != nil && *m.SellerAccountID != "",
	}
	return dto
}
