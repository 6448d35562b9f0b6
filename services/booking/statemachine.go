package booking

import "agrirent/models"

// allowedTransitions is the full lifecycle graph. Rejected, cancelled
// and completed are terminal.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingConfirmed, models.BookingRejected, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingOngoing, models.BookingCancelled, models.BookingCompleted},
	models.BookingOngoing:   {models.BookingCompleted},
}

// CanTransition reports whether the lifecycle graph permits from → to.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Confirm moves a pending booking to confirmed and stores the completion
// OTP the owner will later have to present back. Owner only.
func Confirm(b *models.Booking, actorID, completionOtp string) error {
	if actorID != b.OwnerID {
		return newError(CodeUnauthorized, "only the equipment owner may confirm a booking")
	}
	if !CanTransition(b.Status, models.BookingConfirmed) {
		return newError(CodeIllegalTransition, "cannot confirm a booking in status %q", b.Status)
	}
	b.Status = models.BookingConfirmed
	b.CompletionOtp = completionOtp
	return nil
}

// Reject moves a pending booking to rejected. Owner only.
func Reject(b *models.Booking, actorID string) error {
	if actorID != b.OwnerID {
		return newError(CodeUnauthorized, "only the equipment owner may reject a booking")
	}
	if !CanTransition(b.Status, models.BookingRejected) {
		return newError(CodeIllegalTransition, "cannot reject a booking in status %q", b.Status)
	}
	b.Status = models.BookingRejected
	return nil
}

// Cancel ends a booking before work starts. Either side may cancel: the
// owner, the beneficiary, or the creator (sahayak) acting for them.
// Once the rental is ongoing or completed, cancellation is refused.
func Cancel(b *models.Booking, actorID string) error {
	if actorID != b.OwnerID && actorID != b.Beneficiary && actorID != b.CreatedBy {
		return newError(CodeUnauthorized, "only the owner, beneficiary or creator may cancel a booking")
	}
	if !CanTransition(b.Status, models.BookingCancelled) {
		return newError(CodeIllegalTransition, "cannot cancel a booking in status %q", b.Status)
	}
	b.Status = models.BookingCancelled
	return nil
}

// Begin marks the start of work (the first fuel checkpoint in the
// field). Any participant may record it.
func Begin(b *models.Booking, actorID string) error {
	if !b.HasParticipant(actorID) {
		return newError(CodeUnauthorized, "only a booking participant may start the rental")
	}
	if !CanTransition(b.Status, models.BookingOngoing) {
		return newError(CodeIllegalTransition, "cannot start a booking in status %q", b.Status)
	}
	b.Status = models.BookingOngoing
	return nil
}

// Complete finishes the rental. Owner only, and only with the exact
// completion OTP generated at confirmation; a mismatch changes nothing.
// A confirmed booking may complete directly when no start-of-work
// checkpoint was recorded.
func Complete(b *models.Booking, actorID, providedOtp string) error {
	if actorID != b.OwnerID {
		return newError(CodeUnauthorized, "only the equipment owner may complete a booking")
	}
	if !CanTransition(b.Status, models.BookingCompleted) {
		return newError(CodeIllegalTransition, "cannot complete a booking in status %q", b.Status)
	}
	if providedOtp == "" || providedOtp != b.CompletionOtp {
		return newError(CodeOtpMismatch, "completion OTP does not match")
	}
	b.Status = models.BookingCompleted
	return nil
}

// Rate records the beneficiary's rating, once, after completion.
func Rate(b *models.Booking, actorID string, score int, comment string) error {
	if actorID != b.Beneficiary {
		return newError(CodeUnauthorized, "only the beneficiary may rate a booking")
	}
	if b.Status != models.BookingCompleted {
		return newError(CodeIllegalTransition, "cannot rate a booking in status %q", b.Status)
	}
	if b.Rating != nil {
		return newError(CodeIllegalTransition, "booking has already been rated")
	}
	if score < 1 || score > 5 {
		return newError(CodeIllegalTransition, "rating score must be between 1 and 5")
	}
	b.Rating = &models.Rating{Score: score, Comment: comment}
	return nil
}
