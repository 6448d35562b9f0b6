package booking

import (
	"testing"
	"time"

	"agrirent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestComputeQuoteHourlyWithAddOns(t *testing.T) {
	card := RateCard{
		PerHour:             fptr(500),
		DriverChargePerHour: fptr(100),
		DeliveryFee:         fptr(200),
	}
	start := mustTime(t, "2026-03-10T09:00:00+05:30")
	end := mustTime(t, "2026-03-10T12:00:00+05:30")

	quote, err := ComputeQuote(card, models.BookingHourly, start, end, true, models.OwnerDelivery)
	require.NoError(t, err)

	assert.Equal(t, 3, quote.Duration)
	assert.Equal(t, 1500.0, quote.BaseRate)
	assert.Equal(t, 300.0, quote.DriverCharge)
	assert.Equal(t, 200.0, quote.DeliveryCharge)
	assert.Equal(t, 2000.0, quote.TotalAmount)
}

func TestComputeQuoteHourlyRoundsUp(t *testing.T) {
	card := RateCard{PerHour: fptr(400)}
	start := mustTime(t, "2026-03-10T09:00:00+05:30")

	tests := []struct {
		name      string
		end       time.Time
		wantHours int
	}{
		{"thirty minutes bills one hour", start.Add(30 * time.Minute), 1},
		{"exact hours bill as is", start.Add(2 * time.Hour), 2},
		{"partial hour rounds up", start.Add(2*time.Hour + 30*time.Minute), 3},
		{"one minute over rounds up", start.Add(2*time.Hour + time.Minute), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := ComputeQuote(card, models.BookingHourly, start, tt.end, false, models.SelfPickup)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, quote.Duration)
			assert.Equal(t, 400.0*float64(tt.wantHours), quote.BaseRate)
		})
	}
}

func TestComputeQuoteDailyCountsInclusiveDays(t *testing.T) {
	card := RateCard{PerDay: fptr(2000)}

	tests := []struct {
		name     string
		start    string
		end      string
		wantDays int
	}{
		{"same calendar day is one day", "2026-03-10T06:00:00+05:30", "2026-03-10T18:00:00+05:30", 1},
		{"crossing midnight is two days", "2026-03-10T22:00:00+05:30", "2026-03-11T02:00:00+05:30", 2},
		{"three calendar days", "2026-03-10T08:00:00+05:30", "2026-03-12T17:00:00+05:30", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := ComputeQuote(card, models.BookingDaily,
				mustTime(t, tt.start), mustTime(t, tt.end), false, models.SelfPickup)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, quote.Duration)
			assert.Equal(t, 2000.0*float64(tt.wantDays), quote.BaseRate)
		})
	}
}

func TestComputeQuoteDriverBilledPerHourOnDailyBooking(t *testing.T) {
	card := RateCard{PerDay: fptr(2000), DriverChargePerHour: fptr(50)}
	start := mustTime(t, "2026-03-10T08:00:00+05:30")
	end := mustTime(t, "2026-03-11T08:00:00+05:30")

	quote, err := ComputeQuote(card, models.BookingDaily, start, end, true, models.SelfPickup)
	require.NoError(t, err)

	// Two inclusive days of base rate, 24 elapsed hours of driver time.
	assert.Equal(t, 4000.0, quote.BaseRate)
	assert.Equal(t, 1200.0, quote.DriverCharge)
	assert.Equal(t, 5200.0, quote.TotalAmount)
}

func TestComputeQuoteRejectsInvalidWindow(t *testing.T) {
	card := RateCard{PerHour: fptr(500)}
	start := mustTime(t, "2026-03-10T09:00:00+05:30")

	for _, end := range []time.Time{start, start.Add(-time.Hour)} {
		_, err := ComputeQuote(card, models.BookingHourly, start, end, false, models.SelfPickup)
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeInvalidWindow))
	}
}

func TestComputeQuoteRejectsMissingRate(t *testing.T) {
	start := mustTime(t, "2026-03-10T09:00:00+05:30")
	end := start.Add(2 * time.Hour)

	_, err := ComputeQuote(RateCard{PerDay: fptr(2000)}, models.BookingHourly, start, end, false, models.SelfPickup)
	assert.True(t, IsCode(err, CodeUnsupportedRate), "hourly booking needs an hourly rate")

	_, err = ComputeQuote(RateCard{PerHour: fptr(500)}, models.BookingDaily, start, end, false, models.SelfPickup)
	assert.True(t, IsCode(err, CodeUnsupportedRate), "daily booking needs a daily rate")

	_, err = ComputeQuote(RateCard{PerHour: fptr(500)}, models.BookingType("weekly"), start, end, false, models.SelfPickup)
	assert.True(t, IsCode(err, CodeUnsupportedRate))
}

func TestComputeQuoteDriverWithoutRateFails(t *testing.T) {
	card := RateCard{PerHour: fptr(500)}
	start := mustTime(t, "2026-03-10T09:00:00+05:30")

	_, err := ComputeQuote(card, models.BookingHourly, start, start.Add(time.Hour), true, models.SelfPickup)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeAddOnUnavailable))
}

func TestComputeQuoteDeliveryFeeOnlyOnOwnerDelivery(t *testing.T) {
	card := RateCard{PerHour: fptr(500), DeliveryFee: fptr(250)}
	start := mustTime(t, "2026-03-10T09:00:00+05:30")
	end := start.Add(2 * time.Hour)

	selfPickup, err := ComputeQuote(card, models.BookingHourly, start, end, false, models.SelfPickup)
	require.NoError(t, err)
	assert.Zero(t, selfPickup.DeliveryCharge)

	delivered, err := ComputeQuote(card, models.BookingHourly, start, end, false, models.OwnerDelivery)
	require.NoError(t, err)
	assert.Equal(t, 250.0, delivered.DeliveryCharge)
	assert.Equal(t, selfPickup.TotalAmount+250, delivered.TotalAmount)
}

func TestComputeQuoteTotalIsSumOfComponents(t *testing.T) {
	card := RateCard{
		PerHour:             fptr(350),
		PerDay:              fptr(1800),
		DriverChargePerHour: fptr(80),
		DeliveryFee:         fptr(120),
	}
	start := mustTime(t, "2026-03-10T09:00:00+05:30")
	end := start.Add(7*time.Hour + 15*time.Minute)

	for _, bt := range []models.BookingType{models.BookingHourly, models.BookingDaily} {
		for _, driver := range []bool{false, true} {
			for _, pickup := range []models.PickupType{models.SelfPickup, models.OwnerDelivery} {
				quote, err := ComputeQuote(card, bt, start, end, driver, pickup)
				require.NoError(t, err)
				assert.Equal(t, quote.BaseRate+quote.DriverCharge+quote.DeliveryCharge, quote.TotalAmount)
				assert.GreaterOrEqual(t, quote.Duration, 1)
			}
		}
	}
}
