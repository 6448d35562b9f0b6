package handlers

import (
	"net/http"
	"strings"
	"time"

	"agrirent/models"
	"agrirent/services/booking"

	"github.com/gin-gonic/gin"
)

var (
	BookingService  booking.BookingService
	PaymentProvider booking.PaymentIntentProvider
)

// statusForCode maps booking service error codes to HTTP statuses.
// Conflict-shaped failures are 409 so clients can retry with fresh
// state; everything else is the caller's fault.
func statusForCode(code string) int {
	switch code {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeUnauthorized:
		return http.StatusForbidden
	case booking.CodeSlotNoLongerAvailable, booking.CodeIllegalTransition:
		return http.StatusConflict
	case booking.CodeOtpMismatch:
		return http.StatusUnprocessableEntity
	case booking.CodeInvalidRateCard, booking.CodeUnsupportedRate,
		booking.CodeInvalidWindow, booking.CodeAddOnUnavailable:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func bookingError(c *gin.Context, err error) {
	code := booking.ErrorCode(err)
	if code == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(statusForCode(code), gin.H{"error": err.Error(), "code": code})
}

type createBookingInput struct {
	EquipmentID    string    `json:"equipmentId" binding:"required"`
	Beneficiary    string    `json:"beneficiary"`
	BookingType    string    `json:"bookingType" binding:"required"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	EndDate        time.Time `json:"endDate" binding:"required"`
	RequiresDriver bool      `json:"requiresDriver"`
	PickupType     string    `json:"pickupType"`
}

func (in createBookingInput) toServiceInput(requestedBy string) booking.CreateBookingInput {
	pickup := models.PickupType(strings.ToLower(in.PickupType))
	if pickup == "" {
		pickup = models.SelfPickup
	}
	return booking.CreateBookingInput{
		EquipmentID:    in.EquipmentID,
		RequestedBy:    requestedBy,
		Beneficiary:    in.Beneficiary,
		BookingType:    models.BookingType(strings.ToLower(in.BookingType)),
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		RequiresDriver: in.RequiresDriver,
		PickupType:     pickup,
	}
}

// QuoteBooking prices a prospective booking without persisting anything.
func QuoteBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quote, err := BookingService.Quote(c.Request.Context(), input.toServiceInput(c.GetString("userID")))
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote.Breakdown())
}

// CreateBooking opens a pending booking request against a listing.
func CreateBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := BookingService.CreateBooking(c.Request.Context(), input.toServiceInput(c.GetString("userID")))
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bk)
}

// RespondToBooking lets the owner confirm or reject a pending request.
func RespondToBooking(c *gin.Context) {
	var input struct {
		Decision string `json:"decision" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	decision := booking.Decision(strings.ToLower(input.Decision))
	if decision != booking.DecisionConfirm && decision != booking.DecisionReject {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decision must be confirm or reject"})
		return
	}

	bk, err := BookingService.RespondToBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"), decision)
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// CancelBooking cancels a pending or confirmed booking.
func CancelBooking(c *gin.Context) {
	bk, err := BookingService.CancelBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// BeginBooking marks a confirmed rental as started.
func BeginBooking(c *gin.Context) {
	bk, err := BookingService.BeginBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// CompleteBooking closes an ongoing rental against the completion OTP.
func CompleteBooking(c *gin.Context) {
	var input struct {
		Otp string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := BookingService.CompleteBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"), input.Otp)
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// RateBooking records the beneficiary's one-time rating of a completed
// booking.
func RateBooking(c *gin.Context) {
	var input struct {
		Score   int    `json:"score" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := BookingService.RateBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"), input.Score, input.Comment)
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// CreateBookingPaymentIntent opens a payment intent over the booking's
// total and returns the client secret.
func CreateBookingPaymentIntent(c *gin.Context) {
	bk, err := BookingService.GetBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}

	clientSecret, err := PaymentProvider.CreateIntent(c.Request.Context(), bk)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookingId":    bk.ID,
		"amount":       bk.PriceBreakdown.TotalAmount,
		"clientSecret": clientSecret,
	})
}

// RecordBookingPayment records the outcome of a payment attempt.
func RecordBookingPayment(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := BookingService.RecordPayment(c.Request.Context(), c.Param("id"), c.GetString("userID"), models.PaymentStatus(strings.ToLower(input.Status)))
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// GetBooking returns a single booking to one of its participants.
func GetBooking(c *gin.Context) {
	bk, err := BookingService.GetBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// ListMyBookings returns every booking the caller participates in.
func ListMyBookings(c *gin.Context) {
	bookings, err := BookingService.ListUserBookings(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListOwnerBookings returns bookings against the caller's equipment.
func ListOwnerBookings(c *gin.Context) {
	bookings, err := BookingService.ListOwnerBookings(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		bookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
