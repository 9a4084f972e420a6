package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberoak/atelier-backend/pkg/types"
)

// SiteSettings is the singleton storefront configuration record. The seller's
// connected payment account id lives here and is the source of truth for
// whether checkout can route funds to the seller.
type SiteSettings struct {
	ID              uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BrandName       string            `gorm:"column:brand_name;not null"`
	PrimaryColor    string            `gorm:"column:primary_color;not null"`
	FontFamily      string            `gorm:"column:font_family;not null"`
	LogoURL         string            `gorm:"column:logo_url"`
	SocialLinks     types.SocialLinks `gorm:"column:social_links;type:jsonb;not null"`
	SellerAccountID *string           `gorm:"column:seller_account_id"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (SiteSettings) TableName() string { return "site_settings" }
