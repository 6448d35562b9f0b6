package booking

import (
	"math"
	"time"

	"agrirent/models"
)

// PriceQuote is the deterministic output of the pricing engine.
// TotalAmount is always BaseRate + DriverCharge + DeliveryCharge, and
// Duration is at least 1 whenever the window is valid.
type PriceQuote struct {
	BaseRate       float64 `json:"baseRate"`
	DriverCharge   float64 `json:"driverCharge"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	TotalAmount    float64 `json:"totalAmount"`
	Duration       int     `json:"duration"`
}

// Breakdown converts the quote into the persisted booking shape.
func (q PriceQuote) Breakdown() models.PriceBreakdown {
	return models.PriceBreakdown{
		BaseRate:       q.BaseRate,
		DriverCharge:   q.DriverCharge,
		DeliveryCharge: q.DeliveryCharge,
		TotalAmount:    q.TotalAmount,
	}
}

// ceilHours returns the number of billable hours in [start, end),
// rounding any partial hour up and never billing less than one.
func ceilHours(start, end time.Time) int {
	hours := int(math.Ceil(end.Sub(start).Hours()))
	if hours < 1 {
		hours = 1
	}
	return hours
}

// inclusiveDays counts calendar days touched by [start, end]; a window
// that starts and ends on the same date is one day.
func inclusiveDays(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	days := int(endDay.Sub(startDay).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// ComputeQuote prices a requested window against a rate card.
//
// HOURLY bookings bill ceiling hours at the hourly rate; DAILY bookings
// bill inclusive calendar days at the daily rate. The driver add-on is
// billed per elapsed hour regardless of booking type, and delivery is a
// flat fee charged only for owner delivery. Requesting a driver on a
// listing with no driver rate fails with AddOnUnavailable rather than
// silently billing zero.
func ComputeQuote(
	card RateCard,
	bookingType models.BookingType,
	start, end time.Time,
	requiresDriver bool,
	pickupType models.PickupType,
) (PriceQuote, error) {
	if !end.After(start) {
		return PriceQuote{}, newError(CodeInvalidWindow, "end date must be strictly after start date")
	}

	var baseRate float64
	var duration int
	switch bookingType {
	case models.BookingHourly:
		if card.PerHour == nil {
			return PriceQuote{}, newError(CodeUnsupportedRate, "listing has no hourly rate")
		}
		duration = ceilHours(start, end)
		baseRate = *card.PerHour * float64(duration)
	case models.BookingDaily:
		if card.PerDay == nil {
			return PriceQuote{}, newError(CodeUnsupportedRate, "listing has no daily rate")
		}
		duration = inclusiveDays(start, end)
		baseRate = *card.PerDay * float64(duration)
	default:
		return PriceQuote{}, newError(CodeUnsupportedRate, "unknown booking type %q", bookingType)
	}

	var driverCharge float64
	if requiresDriver {
		if card.DriverChargePerHour == nil {
			return PriceQuote{}, newError(CodeAddOnUnavailable, "listing does not offer a driver")
		}
		driverCharge = *card.DriverChargePerHour * float64(ceilHours(start, end))
	}

	var deliveryCharge float64
	if pickupType == models.OwnerDelivery && card.DeliveryFee != nil {
		deliveryCharge = *card.DeliveryFee
	}

	return PriceQuote{
		BaseRate:       baseRate,
		DriverCharge:   driverCharge,
		DeliveryCharge: deliveryCharge,
		TotalAmount:    baseRate + driverCharge + deliveryCharge,
		Duration:       duration,
	}, nil
}
