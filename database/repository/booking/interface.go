package bookingRepo

import (
	"context"
	"errors"

	"agrirent/models"
)

var (
	// ErrNotFound is returned when no booking matches the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrStaleStatus is returned when a conditional write matched no
	// document because the booking's status changed underneath the caller.
	ErrStaleStatus = errors.New("booking status changed concurrently")
)

// BookingRepository defines the interface for booking data access.
//
// UpdateIfStatus is a compare-and-set: the write only lands if the
// persisted status still equals expected. That, not "read then write",
// is what keeps two concurrent confirms from both succeeding.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateIfStatus(ctx context.Context, booking *models.Booking, expected models.BookingStatus) error
	SetRatingIfUnset(ctx context.Context, id string, rating models.Rating) error
	SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) error
	ListByEquipment(ctx context.Context, equipmentID string, statusIn []models.BookingStatus) ([]models.Booking, error)
	ListByParticipant(ctx context.Context, userID string) ([]models.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
}
