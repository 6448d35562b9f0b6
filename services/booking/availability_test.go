package booking

import (
	"testing"
	"time"

	"agrirent/models"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name string
		s1   time.Time
		e1   time.Time
		s2   time.Time
		e2   time.Time
		want bool
	}{
		{"partial overlap", at(0), at(2), at(1), at(3), true},
		{"contained window", at(0), at(4), at(1), at(2), true},
		{"identical windows", at(0), at(2), at(0), at(2), true},
		{"touching boundaries do not overlap", at(0), at(2), at(2), at(4), false},
		{"disjoint windows", at(0), at(1), at(3), at(4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestCheckAvailabilityOnlyBlockingStatusesCount(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	window := func(startH, endH int, status models.BookingStatus, id string) models.Booking {
		return models.Booking{
			ID:        id,
			StartDate: base.Add(time.Duration(startH) * time.Hour),
			EndDate:   base.Add(time.Duration(endH) * time.Hour),
			Status:    status,
		}
	}

	existing := []models.Booking{
		window(0, 2, models.BookingPending, "pending"),
		window(0, 2, models.BookingRejected, "rejected"),
		window(0, 2, models.BookingCancelled, "cancelled"),
		window(0, 2, models.BookingCompleted, "completed"),
	}

	result := CheckAvailability(base.Add(time.Hour), base.Add(3*time.Hour), existing)
	assert.True(t, result.Available, "non-blocking statuses must not reserve the slot")
	assert.Empty(t, result.ConflictingIDs)

	existing = append(existing,
		window(1, 3, models.BookingConfirmed, "confirmed"),
		window(2, 4, models.BookingOngoing, "ongoing"),
	)
	result = CheckAvailability(base.Add(time.Hour), base.Add(3*time.Hour), existing)
	assert.False(t, result.Available)
	assert.ElementsMatch(t, []string{"confirmed", "ongoing"}, result.ConflictingIDs)
}

func TestCheckAvailabilityBackToBackWindows(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	existing := []models.Booking{{
		ID:        "morning",
		StartDate: base,
		EndDate:   base.Add(2 * time.Hour),
		Status:    models.BookingConfirmed,
	}}

	// [12:00, 14:00) right after [10:00, 12:00) is fine.
	result := CheckAvailability(base.Add(2*time.Hour), base.Add(4*time.Hour), existing)
	assert.True(t, result.Available)

	// [11:00, 13:00) collides with [10:00, 12:00).
	result = CheckAvailability(base.Add(time.Hour), base.Add(3*time.Hour), existing)
	assert.False(t, result.Available)
	assert.Equal(t, []string{"morning"}, result.ConflictingIDs)
}
