package booking

import "agrirent/models"

// RateCard is a listing's pricing normalized for the pricing engine.
// Nil fields mean the rate or add-on is not offered.
type RateCard struct {
	PerHour             *float64
	PerDay              *float64
	DriverChargePerHour *float64
	DeliveryFee         *float64
}

// BuildRateCard validates and normalizes a listing's raw pricing fields.
// A monetary field that is present but negative is always rejected.
// When requirePriced is set, a listing with neither an hourly nor a
// daily rate ("price on request") is rejected too, since it cannot
// produce an automatic quote.
func BuildRateCard(listing *models.EquipmentListing, requirePriced bool) (RateCard, error) {
	fields := map[string]*float64{
		"perHour":             listing.Rate.PerHour,
		"perDay":              listing.Rate.PerDay,
		"driverChargePerHour": listing.DriverChargePerHour,
		"deliveryFee":         listing.DeliveryFee,
	}
	for name, v := range fields {
		if v != nil && *v < 0 {
			return RateCard{}, newError(CodeInvalidRateCard, "listing %s has negative %s", listing.ID, name)
		}
	}

	if requirePriced && listing.Rate.PerHour == nil && listing.Rate.PerDay == nil {
		return RateCard{}, newError(CodeInvalidRateCard, "listing %s is price-on-request: neither hourly nor daily rate is set", listing.ID)
	}

	return RateCard{
		PerHour:             listing.Rate.PerHour,
		PerDay:              listing.Rate.PerDay,
		DriverChargePerHour: listing.DriverChargePerHour,
		DeliveryFee:         listing.DeliveryFee,
	}, nil
}
