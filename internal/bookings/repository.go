package bookings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
)

// Repository handles booking persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to booking operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, booking *models.Booking) error {
	if booking == nil {
		return fmt.Errorf("booking is required")
	}
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *Repository) List(ctx context.Context) ([]models.Booking, error) {
	var items []models.Booking
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) Update(ctx context.Context, booking *models.Booking) error {
	if booking == nil {
		return fmt.Errorf("booking is required")
	}
	return r.db.WithContext(ctx).Save(booking).Error
}
