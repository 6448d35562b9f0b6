package booking

import (
	"time"

	"agrirent/models"
)

// AvailabilityResult reports whether a requested window is free, and if
// not, which bookings collide with it.
type AvailabilityResult struct {
	Available      bool     `json:"available"`
	ConflictingIDs []string `json:"conflictingIds,omitempty"`
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Windows that merely touch at a boundary do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// CheckAvailability tests a requested [start, end) window against the
// existing bookings of the same equipment. Only confirmed and ongoing
// bookings block a window; pending requests reserve nothing, so two
// pending requests may coexist until one of them is confirmed.
func CheckAvailability(start, end time.Time, existing []models.Booking) AvailabilityResult {
	var conflicts []string
	for _, b := range existing {
		if b.Status != models.BookingConfirmed && b.Status != models.BookingOngoing {
			continue
		}
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			conflicts = append(conflicts, b.ID)
		}
	}
	return AvailabilityResult{Available: len(conflicts) == 0, ConflictingIDs: conflicts}
}
