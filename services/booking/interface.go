package booking

import (
	"context"
	"time"

	"agrirent/models"
)

// Decision is the owner's answer to a pending booking request.
type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionReject  Decision = "reject"
)

// CreateBookingInput carries everything needed to open a booking
// request. Beneficiary may differ from RequestedBy when a sahayak books
// on a farmer's behalf; when empty it defaults to RequestedBy.
type CreateBookingInput struct {
	EquipmentID    string
	RequestedBy    string
	Beneficiary    string
	BookingType    models.BookingType
	StartDate      time.Time
	EndDate        time.Time
	RequiresDriver bool
	PickupType     models.PickupType
}

// BookingService is the single write authority over booking records.
// Every mutating call takes the explicit caller identity and
// revalidates it against the persisted booking, never a cached claim.
type BookingService interface {
	Quote(ctx context.Context, input CreateBookingInput) (PriceQuote, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	RespondToBooking(ctx context.Context, bookingID, actorID string, decision Decision) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	BeginBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID, actorID, providedOtp string) (*models.Booking, error)
	RateBooking(ctx context.Context, bookingID, actorID string, score int, comment string) (*models.Booking, error)
	RecordPayment(ctx context.Context, bookingID, actorID string, status models.PaymentStatus) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListOwnerBookings(ctx context.Context, ownerID string) ([]models.Booking, error)
}

// ReminderScheduler schedules a start-of-rental reminder when a booking
// is confirmed. Implementations must never mutate booking state.
type ReminderScheduler interface {
	ScheduleStartReminder(ctx context.Context, booking *models.Booking) error
}
