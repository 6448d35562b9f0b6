package booking

import (
	"testing"

	"agrirent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from models.BookingStatus
		to   models.BookingStatus
	}{
		{models.BookingPending, models.BookingConfirmed},
		{models.BookingPending, models.BookingRejected},
		{models.BookingPending, models.BookingCancelled},
		{models.BookingConfirmed, models.BookingOngoing},
		{models.BookingConfirmed, models.BookingCancelled},
		{models.BookingConfirmed, models.BookingCompleted},
		{models.BookingOngoing, models.BookingCompleted},
	}
	for _, tt := range allowed {
		assert.True(t, CanTransition(tt.from, tt.to), "%s -> %s should be legal", tt.from, tt.to)
	}

	forbidden := []struct {
		from models.BookingStatus
		to   models.BookingStatus
	}{
		{models.BookingPending, models.BookingOngoing},
		{models.BookingPending, models.BookingCompleted},
		{models.BookingOngoing, models.BookingCancelled},
		{models.BookingOngoing, models.BookingConfirmed},
		{models.BookingCompleted, models.BookingOngoing},
		{models.BookingCancelled, models.BookingConfirmed},
		{models.BookingRejected, models.BookingPending},
		{models.BookingConfirmed, models.BookingPending},
	}
	for _, tt := range forbidden {
		assert.False(t, CanTransition(tt.from, tt.to), "%s -> %s should be illegal", tt.from, tt.to)
	}
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:           "bk-1",
		OwnerID:      "owner",
		Beneficiary:  "farmer",
		CreatedBy:    "sahayak",
		Participants: []string{"owner", "farmer", "sahayak"},
		Status:       models.BookingPending,
	}
}

func TestConfirm(t *testing.T) {
	b := pendingBooking()

	err := Confirm(b, "farmer", "482913")
	assert.True(t, IsCode(err, CodeUnauthorized))
	assert.Equal(t, models.BookingPending, b.Status)

	require.NoError(t, Confirm(b, "owner", "482913"))
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, "482913", b.CompletionOtp)

	// Confirming twice is illegal.
	err = Confirm(b, "owner", "000000")
	assert.True(t, IsCode(err, CodeIllegalTransition))
}

func TestReject(t *testing.T) {
	b := pendingBooking()

	err := Reject(b, "sahayak")
	assert.True(t, IsCode(err, CodeUnauthorized))

	require.NoError(t, Reject(b, "owner"))
	assert.Equal(t, models.BookingRejected, b.Status)

	err = Reject(b, "owner")
	assert.True(t, IsCode(err, CodeIllegalTransition))
}

func TestCancelActors(t *testing.T) {
	for _, actor := range []string{"owner", "farmer", "sahayak"} {
		b := pendingBooking()
		require.NoError(t, Cancel(b, actor), "actor %s should be able to cancel", actor)
		assert.Equal(t, models.BookingCancelled, b.Status)
	}

	b := pendingBooking()
	err := Cancel(b, "stranger")
	assert.True(t, IsCode(err, CodeUnauthorized))
	assert.Equal(t, models.BookingPending, b.Status)
}

func TestCancelRefusedOnceOngoing(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingOngoing

	err := Cancel(b, "owner")
	assert.True(t, IsCode(err, CodeIllegalTransition))
	assert.Equal(t, models.BookingOngoing, b.Status)
}

func TestBegin(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingConfirmed

	err := Begin(b, "stranger")
	assert.True(t, IsCode(err, CodeUnauthorized))

	require.NoError(t, Begin(b, "farmer"))
	assert.Equal(t, models.BookingOngoing, b.Status)
}

func TestComplete(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingOngoing
	b.CompletionOtp = "482913"

	err := Complete(b, "farmer", "482913")
	assert.True(t, IsCode(err, CodeUnauthorized))

	err = Complete(b, "owner", "111111")
	assert.True(t, IsCode(err, CodeOtpMismatch))
	assert.Equal(t, models.BookingOngoing, b.Status, "a failed OTP must not change state")

	err = Complete(b, "owner", "")
	assert.True(t, IsCode(err, CodeOtpMismatch))

	require.NoError(t, Complete(b, "owner", "482913"))
	assert.Equal(t, models.BookingCompleted, b.Status)
}

func TestCompleteFromPendingIsIllegal(t *testing.T) {
	b := pendingBooking()
	b.CompletionOtp = "482913"

	err := Complete(b, "owner", "482913")
	assert.True(t, IsCode(err, CodeIllegalTransition))
	assert.Equal(t, models.BookingPending, b.Status)
}

func TestCompleteDirectlyFromConfirmed(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingConfirmed
	b.CompletionOtp = "482913"

	require.NoError(t, Complete(b, "owner", "482913"))
	assert.Equal(t, models.BookingCompleted, b.Status)
}

func TestRate(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingCompleted

	err := Rate(b, "owner", 5, "great")
	assert.True(t, IsCode(err, CodeUnauthorized))

	for _, score := range []int{0, -1, 6} {
		err := Rate(b, "farmer", score, "")
		assert.True(t, IsCode(err, CodeIllegalTransition), "score %d must be rejected", score)
		assert.Nil(t, b.Rating)
	}

	require.NoError(t, Rate(b, "farmer", 4, "worked well"))
	require.NotNil(t, b.Rating)
	assert.Equal(t, 4, b.Rating.Score)

	err = Rate(b, "farmer", 5, "changed my mind")
	assert.True(t, IsCode(err, CodeIllegalTransition))
	assert.Equal(t, 4, b.Rating.Score)
}

func TestRateBeforeCompletion(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingOngoing

	err := Rate(b, "farmer", 5, "")
	assert.True(t, IsCode(err, CodeIllegalTransition))
	assert.Nil(t, b.Rating)
}
