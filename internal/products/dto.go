package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	"github.com/emberoak/atelier-backend/pkg/types"
)

// ProductDTO represents the listing payload returned to clients. Price is in
// major units.
type ProductDTO struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Price       decimal.Decimal     `json:"price"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	ImageURL    string              `json:"image_url"`
	Status      enums.ContentStatus `json:"status"`
	SEO         types.SEO           `json:"seo"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreateProductInput captures a new listing. Price is a major-unit decimal
// string so clients never deal in cents.
type CreateProductInput struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Price       string     `json:"price" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Category    string     `json:"category" validate:"required,max=100"`
	ImageURL    string     `json:"image_url" validate:"required,url"`
	Status      string     `json:"status" validate:"omitempty,oneof=published draft"`
	SEO         *types.SEO `json:"seo"`
}

// UpdateProductInput captures a partial listing mutation.
type UpdateProductInput struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Price       *string    `json:"price"`
	Description *string    `json:"description"`
	Category    *string    `json:"category" validate:"omitempty,max=100"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
	Status      *string    `json:"status" validate:"omitempty,oneof=published draft"`
	SEO         *types.SEO `json:"seo"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:          m.ID,
		Name:        m.Name,
		Price:       priceMajor(m.PriceCents),
		Description: m.Description,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Status:      m.Status,
		SEO:         m.SEO,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func priceMajor(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}
