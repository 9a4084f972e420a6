package projects

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberoak/atelier-backend/pkg/db/models"
)

// ProjectDTO represents a portfolio case study returned to clients.
type ProjectDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Client      string    `json:"client"`
	Category    string    `json:"category"`
	Year        string    `json:"year"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Challenge   string    `json:"challenge"`
	Outcome     string    `json:"outcome"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProjectInput captures a new case study.
type CreateProjectInput struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Client      string `json:"client" validate:"required,max=120"`
	Category    string `json:"category" validate:"required,max=100"`
	Year        string `json:"year" validate:"required,max=10"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Challenge   string `json:"challenge" validate:"required"`
	Outcome     string `json:"outcome" validate:"required"`
}

// UpdateProjectInput captures a partial case study mutation.
type UpdateProjectInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Client      *string `json:"client" validate:"omitempty,max=120"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Year        *string `json:"year" validate:"omitempty,max=10"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Challenge   *string `json:"challenge"`
	Outcome     *string `json:"outcome"`
}

func toDTO(m *models.Project) *ProjectDTO {
	if m == nil {
		return nil
	}
	return &ProjectDTO{
		ID:          m.ID,
		Title:       m.Title,
		Client:      m.Client,
		Category:    m.Category,
		Year:        m.Year,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Challenge:   m.Challenge,
		Outcome:     m.Outcome,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
