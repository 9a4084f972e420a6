package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberoak/atelier-backend/pkg/enums"
)

// Booking is a commission/service request submitted by a visitor.
type Booking struct {
	ID           uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName string              `gorm:"column:customer_name;not null"`
	Email        string              `gorm:"column:email;not null"`
	Service      string              `gorm:"column:service;not null"`
	Date         string              `gorm:"column:date;not null"`
	Message      string              `gorm:"column:message"`
	Status       enums.BookingStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
