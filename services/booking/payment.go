package booking

import (
	"context"
	"fmt"
	"math"

	"agrirent/models"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentIntentProvider creates a payment intent for a booking's total
// and returns the client secret the frontend needs to collect payment.
type PaymentIntentProvider interface {
	CreateIntent(ctx context.Context, booking *models.Booking) (string, error)
}

// StripePaymentHandler implements PaymentIntentProvider with Stripe.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler builds a Stripe-backed payment handler. The
// global stripe.Key must be set before the first call.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// CreateIntent opens a payment intent over the booking's total amount.
// Amounts are in rupees and Stripe wants paise, hence the ×100.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.PriceBreakdown.TotalAmount <= 0 {
		return "", fmt.Errorf("booking %s has no payable amount", booking.ID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(booking.PriceBreakdown.TotalAmount * 100))),
		Currency: stripe.String(string(stripe.CurrencyINR)),
	}
	params.AddMetadata("booking_id", booking.ID)
	params.AddMetadata("equipment_id", booking.EquipmentID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent for booking %s: %w", booking.ID, err)
	}

	h.logger.Info("Created payment intent",
		zap.String("bookingID", booking.ID),
		zap.String("paymentIntentID", intent.ID))
	return intent.ClientSecret, nil
}
