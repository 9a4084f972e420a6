package bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
)

// BookingDTO represents a commission request returned to the admin console.
type BookingDTO struct {
	ID           uuid.UUID           `json:"id"`
	CustomerName string              `json:"customer_name"`
	Email        string              `json:"email"`
	Service      string              `json:"service"`
	Date         string              `json:"date"`
	Message      string              `json:"message,omitempty"`
	Status       enums.BookingStatus `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// CreateBookingInput is the public commission request form.
type CreateBookingInput struct {
	CustomerName string `json:"customer_name" validate:"required,min=1,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Service      string `json:"service" validate:"required,max=120"`
	Date         string `json:"date" validate:"required,max=40"`
	Message      string `json:"message" validate:"omitempty,max=2000"`
}

// UpdateStatusInput moves a booking along its lifecycle.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed"`
}

func toDTO(m *models.Booking) *BookingDTO {
	if m == nil {
		return nil
	}
	return &BookingDTO{
		ID:           m.ID,
		CustomerName: m.CustomerName,
		Email:        m.Email,
		Service:      m.Service,
		Date:         m.Date,
		Message:      m.Message,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
