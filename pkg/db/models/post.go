package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberoak/atelier-backend/pkg/enums"
	"github.com/emberoak/atelier-backend/pkg/types"
)

// Post is a journal entry shown on the storefront.
type Post struct {
	ID          uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string              `gorm:"column:title;not null"`
	Excerpt     string              `gorm:"column:excerpt;not null"`
	Content     string              `gorm:"column:content;not null"`
	Author      string              `gorm:"column:author;not null"`
	Date        string              `gorm:"column:date;not null"`
	ImageURL    string              `gorm:"column:image_url;not null"`
	Category    string              `gorm:"column:category;not null"`
	ReadingTime string              `gorm:"column:reading_time;not null"`
	Status      enums.ContentStatus `gorm:"column:status;not null;default:'draft'"`
	SEO         types.SEO           `gorm:"column:seo;type:jsonb;not null"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
