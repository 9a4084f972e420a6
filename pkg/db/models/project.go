package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio case study.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Client      string    `gorm:"column:client;not null"`
	Category    string    `gorm:"column:category;not null"`
	Year        string    `gorm:"column:year;not null"`
	Description string    `gorm:"column:description;not null"`
	ImageURL    string    `gorm:"column:image_url;not null"`
	Challenge   string    `gorm:"column:challenge;not null"`
	Outcome     string    `gorm:"column:outcome;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
