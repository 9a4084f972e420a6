package bookings

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
)

type bookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
}

// Service exposes booking operations.
type Service interface {
	Create(ctx context.Context, input CreateBookingInput) (*BookingDTO, error)
	List(ctx context.Context) ([]BookingDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*BookingDTO, error)
}

type service struct {
	repo bookingRepository
}

// NewService builds a booking service with the provided repository.
func NewService(repo bookingRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateBookingInput) (*BookingDTO, error) {
	booking := &models.Booking{
		CustomerName: input.CustomerName,
		Email:        input.Email,
		Service:      input.Service,
		Date:         input.Date,
		Message:      input.Message,
		Status:       enums.BookingStatusPending,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create booking")
	}
	return toDTO(booking), nil
}

func (s *service) List(ctx context.Context) ([]BookingDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	dtos := make([]BookingDTO, len(items))
	for i := range items {
		dtos[i] = *toDTO(&items[i])
	}
	return dtos, nil
}

// UpdateStatus advances a booking along pending -> confirmed -> completed.
// Skipping or reversing a step is a state conflict.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*BookingDTO, error) {
	next := enums.BookingStatus(input.Status)
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid booking status")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move booking from %s to %s", booking.Status, next),
		)
	}

	booking.Status = next
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update booking")
	}
	return toDTO(booking), nil
}
