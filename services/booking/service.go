package booking

import (
	"context"
	"errors"
	"sync"

	bookingRepo "agrirent/database/repository/booking"
	listingRepo "agrirent/database/repository/listing"
	"agrirent/models"
	"agrirent/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// completionOtpLength is the length of the numeric code generated at
// confirmation and verified at completion.
const completionOtpLength = 6

// equipmentLocks hands out one mutex per equipment id so that confirms
// for the same listing are serialized in-process. The repository's
// compare-and-set on status is the cross-process backstop.
type equipmentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (e *equipmentLocks) forEquipment(equipmentID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, exists := e.locks[equipmentID]
	if !exists {
		lock = &sync.Mutex{}
		e.locks[equipmentID] = lock
	}
	return lock
}

// DefaultBookingService implements BookingService over the booking and
// listing repositories.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ListingRepo listingRepo.ListingRepository
	Reminders   ReminderScheduler

	locks equipmentLocks
}

// NewDefaultBookingService wires a booking service. reminders may be
// nil when no reminder queue is configured.
func NewDefaultBookingService(repo bookingRepo.BookingRepository, listings listingRepo.ListingRepository, reminders ReminderScheduler) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:        repo,
		ListingRepo: listings,
		Reminders:   reminders,
		locks:       equipmentLocks{locks: make(map[string]*sync.Mutex)},
	}
}

func (s *DefaultBookingService) loadListing(ctx context.Context, equipmentID string) (*models.EquipmentListing, error) {
	listing, err := s.ListingRepo.GetByID(ctx, equipmentID)
	if errors.Is(err, listingRepo.ErrNotFound) {
		return nil, newError(CodeNotFound, "equipment %s not found", equipmentID)
	}
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *DefaultBookingService) loadBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, newError(CodeNotFound, "booking %s not found", bookingID)
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *DefaultBookingService) quoteForListing(listing *models.EquipmentListing, input CreateBookingInput) (PriceQuote, error) {
	card, err := BuildRateCard(listing, true)
	if err != nil {
		return PriceQuote{}, err
	}
	return ComputeQuote(card, input.BookingType, input.StartDate, input.EndDate, input.RequiresDriver, input.PickupType)
}

// Quote prices a prospective booking without persisting anything.
func (s *DefaultBookingService) Quote(ctx context.Context, input CreateBookingInput) (PriceQuote, error) {
	listing, err := s.loadListing(ctx, input.EquipmentID)
	if err != nil {
		return PriceQuote{}, err
	}
	return s.quoteForListing(listing, input)
}

// buildParticipants returns the de-duplicated union of the ids that get
// read access to a booking.
func buildParticipants(ids ...string) []string {
	seen := make(map[string]bool, len(ids))
	participants := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		participants = append(participants, id)
	}
	return participants
}

// CreateBooking opens a booking request in pending status. Availability
// is deliberately not checked here: conflicts are resolved when the
// owner confirms, so several farmers may request the same window.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if input.Beneficiary == "" {
		input.Beneficiary = input.RequestedBy
	}

	listing, err := s.loadListing(ctx, input.EquipmentID)
	if err != nil {
		return nil, err
	}
	if listing.AvailabilityStatus != models.EquipmentAvailable {
		return nil, newError(CodeSlotNoLongerAvailable, "equipment %s is under maintenance", listing.ID)
	}

	quote, err := s.quoteForListing(listing, input)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		EquipmentID:    listing.ID,
		OwnerID:        listing.OwnerID,
		Beneficiary:    input.Beneficiary,
		CreatedBy:      input.RequestedBy,
		Participants:   buildParticipants(listing.OwnerID, input.RequestedBy, input.Beneficiary),
		BookingType:    input.BookingType,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		RequiresDriver: input.RequiresDriver,
		PickupType:     input.PickupType,
		PriceBreakdown: quote.Breakdown(),
		Status:         models.BookingPending,
		PaymentStatus:  models.PaymentPending,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// RespondToBooking is the owner's accept/reject of a pending request.
// Confirmation re-runs the availability check against the listing's
// confirmed and ongoing bookings, serialized per equipment, so that at
// most one of two overlapping pending requests can win the slot.
func (s *DefaultBookingService) RespondToBooking(ctx context.Context, bookingID, actorID string, decision Decision) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != booking.OwnerID {
		return nil, newError(CodeUnauthorized, "only the equipment owner may respond to a booking")
	}

	switch decision {
	case DecisionConfirm:
		return s.confirm(ctx, booking, actorID)
	case DecisionReject:
		if err := Reject(booking, actorID); err != nil {
			return nil, err
		}
		if err := s.Repo.UpdateIfStatus(ctx, booking, models.BookingPending); err != nil {
			return nil, mapStaleErr(err)
		}
		return booking, nil
	default:
		return nil, newError(CodeIllegalTransition, "unknown decision %q", decision)
	}
}

func (s *DefaultBookingService) confirm(ctx context.Context, booking *models.Booking, actorID string) (*models.Booking, error) {
	lock := s.locks.forEquipment(booking.EquipmentID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock: a sibling confirm may have just landed.
	booking, err := s.loadBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	blocking, err := s.Repo.ListByEquipment(ctx, booking.EquipmentID,
		[]models.BookingStatus{models.BookingConfirmed, models.BookingOngoing})
	if err != nil {
		return nil, err
	}
	result := CheckAvailability(booking.StartDate, booking.EndDate, excludeBooking(blocking, booking.ID))
	if !result.Available {
		return nil, newError(CodeSlotNoLongerAvailable,
			"requested window conflicts with %d confirmed booking(s)", len(result.ConflictingIDs))
	}

	otp, err := utils.GenerateNumericOTP(completionOtpLength)
	if err != nil {
		return nil, err
	}
	if err := Confirm(booking, actorID, otp); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateIfStatus(ctx, booking, models.BookingPending); err != nil {
		return nil, mapStaleErr(err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleStartReminder(ctx, booking); err != nil {
			utils.GetLogger().Warn("failed to schedule start reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	return booking, nil
}

// CancelBooking ends a pending or confirmed booking at either party's
// request.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	previous := booking.Status
	if err := Cancel(booking, actorID); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateIfStatus(ctx, booking, previous); err != nil {
		return nil, mapStaleErr(err)
	}
	return booking, nil
}

// BeginBooking records the start of work on a confirmed booking.
func (s *DefaultBookingService) BeginBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := Begin(booking, actorID); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateIfStatus(ctx, booking, models.BookingConfirmed); err != nil {
		return nil, mapStaleErr(err)
	}
	return booking, nil
}

// CompleteBooking finishes the rental once the owner presents the
// completion OTP the beneficiary shared with them.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, bookingID, actorID, providedOtp string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	previous := booking.Status
	if err := Complete(booking, actorID, providedOtp); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateIfStatus(ctx, booking, previous); err != nil {
		return nil, mapStaleErr(err)
	}
	return booking, nil
}

// RateBooking records the beneficiary's one-time rating after
// completion.
func (s *DefaultBookingService) RateBooking(ctx context.Context, bookingID, actorID string, score int, comment string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := Rate(booking, actorID, score, comment); err != nil {
		return nil, err
	}
	if err := s.Repo.SetRatingIfUnset(ctx, booking.ID, *booking.Rating); err != nil {
		return nil, mapStaleErr(err)
	}
	return booking, nil
}

// RecordPayment updates the payment status tracked independently of the
// booking lifecycle.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, bookingID, actorID string, status models.PaymentStatus) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.HasParticipant(actorID) {
		return nil, newError(CodeUnauthorized, "only a booking participant may record a payment")
	}
	switch status {
	case models.PaymentCompleted, models.PaymentFailed, models.PaymentPending:
	default:
		return nil, newError(CodeIllegalTransition, "unknown payment status %q", status)
	}
	if err := s.Repo.SetPaymentStatus(ctx, booking.ID, status); err != nil {
		return nil, mapStaleErr(err)
	}
	booking.PaymentStatus = status
	return booking, nil
}

// GetBooking returns a booking to one of its participants.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.HasParticipant(actorID) {
		return nil, newError(CodeUnauthorized, "user %s has no access to booking %s", actorID, bookingID)
	}
	return booking, nil
}

// ListUserBookings returns every booking the user participates in.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByParticipant(ctx, userID)
}

// ListOwnerBookings returns every booking against the owner's listings.
func (s *DefaultBookingService) ListOwnerBookings(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func excludeBooking(bookings []models.Booking, id string) []models.Booking {
	filtered := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// mapStaleErr translates repository errors from conditional writes into
// the service taxonomy: a stale status means someone else transitioned
// the booking between our read and our write.
func mapStaleErr(err error) error {
	if errors.Is(err, bookingRepo.ErrStaleStatus) {
		return newError(CodeIllegalTransition, "booking was modified concurrently, please retry")
	}
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return newError(CodeNotFound, "booking no longer exists")
	}
	return err
}
