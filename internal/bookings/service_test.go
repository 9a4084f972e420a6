package bookings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
)

type stubRepo struct {
	byID    map[uuid.UUID]*models.Booking
	updated []*models.Booking
}

func (s *stubRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = uuid.New()
	return nil
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if b, ok := s.byID[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) List(ctx context.Context) ([]models.Booking, error) { return nil, nil }

func (s *stubRepo) Update(ctx context.Context, booking *models.Booking) error {
	s.updated = append(s.updated, booking)
	return nil
}

func TestCreateStartsPending(t *testing.T) {
	svc, _ := NewService(&stubRepo{})

	dto, err := svc.Create(context.Background(), CreateBookingInput{
		CustomerName: "Ana",
		Email:        "ana@example.com",
		Service:      "custom glaze",
		Date:         "2026-09-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Status != enums.BookingStatusPending {
		t.Fatalf("expected pending, got %s", dto.Status)
	}
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.Booking{
		id: {ID: id, Status: enums.BookingStatusPending},
	}}
	svc, _ := NewService(repo)

	dto, err := svc.UpdateStatus(context.Background(), id, UpdateStatusInput{Status: "confirmed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Status != enums.BookingStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", dto.Status)
	}

	dto, err = svc.UpdateStatus(context.Background(), id, UpdateStatusInput{Status: "completed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Status != enums.BookingStatusCompleted {
		t.Fatalf("expected completed, got %s", dto.Status)
	}
}

func TestUpdateStatusRejectsSkippedStep(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{byID: map[uuid.UUID]*models.Booking{
		id: {ID: id, Status: enums.BookingStatusPending},
	}}
	svc, _ := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), id, UpdateStatusInput{Status: "completed"})
	if err == nil {
		t.Fatal("expected state conflict")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatal("booking must not be written on rejected transition")
	}
}

func TestUpdateStatusMissingBooking(t *testing.T) {
	svc, _ := NewService(&stubRepo{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), UpdateStatusInput{Status: "confirmed"})
	if err == nil {
		t.Fatal("expected not found")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
