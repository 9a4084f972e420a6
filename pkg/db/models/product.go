package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberoak/atelier-backend/pkg/enums"
	"github.com/emberoak/atelier-backend/pkg/types"
)

// Product is a storefront listing for a handmade piece.
type Product struct {
	ID          uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string              `gorm:"column:name;not null"`
	PriceCents  int64               `gorm:"column:price_cents;not null"`
	Description string              `gorm:"column:description;not null"`
	Category    string              `gorm:"column:category;not null"`
	ImageURL    string              `gorm:"column:image_url;not null"`
	Status      enums.ContentStatus `gorm:"column:status;not null;default:'draft'"`
	SEO         types.SEO           `gorm:"column:seo;type:jsonb;not null"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
