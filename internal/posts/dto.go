package posts

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	"github.com/emberoak/atelier-backend/pkg/types"
)

// PostDTO represents a journal entry returned to clients.
type PostDTO struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Excerpt     string              `json:"excerpt"`
	Content     string              `json:"content"`
	Author      string              `json:"author"`
	Date        string              `json:"date"`
	ImageURL    string              `json:"image_url"`
	Category    string              `json:"category"`
	ReadingTime string              `json:"reading_time"`
	Status      enums.ContentStatus `json:"status"`
	SEO         types.SEO           `json:"seo"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreatePostInput captures a new journal entry.
type CreatePostInput struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Excerpt     string     `json:"excerpt" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Author      string     `json:"author" validate:"required,max=120"`
	Date        string     `json:"date" validate:"required,max=40"`
	ImageURL    string     `json:"image_url" validate:"required,url"`
	Category    string     `json:"category" validate:"required,max=100"`
	ReadingTime string     `json:"reading_time" validate:"omitempty,max=40"`
	Status      string     `json:"status" validate:"omitempty,oneof=published draft"`
	SEO         *types.SEO `json:"seo"`
}

// UpdatePostInput captures a partial journal entry mutation.
type UpdatePostInput struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	Author      *string    `json:"author" validate:"omitempty,max=120"`
	Date        *string    `json:"date" validate:"omitempty,max=40"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
	Category    *string    `json:"category" validate:"omitempty,max=100"`
	ReadingTime *string    `json:"reading_time" validate:"omitempty,max=40"`
	Status      *string    `json:"status" validate:"omitempty,oneof=published draft"`
	SEO         *types.SEO `json:"seo"`
}

func toDTO(m *models.Post) *PostDTO {
	if m == nil {
		return nil
	}
	return &PostDTO{
		ID:          m.ID,
		Title:       m.Title,
		Excerpt:     m.Excerpt,
		Content:     m.Content,
		Author:      m.Author,
		Date:        m.Date,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
		ReadingTime: m.ReadingTime,
		Status:      m.Status,
		SEO:         m.SEO,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
