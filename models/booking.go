package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingOngoing   BookingStatus = "ongoing"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingRejected || s == BookingCancelled || s == BookingCompleted
}

// PaymentStatus is tracked independently of the booking lifecycle.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// BookingType selects which rate a booking is priced against.
type BookingType string

const (
	BookingHourly BookingType = "hourly"
	BookingDaily  BookingType = "daily"
)

// PickupType describes how the equipment reaches the farm.
type PickupType string

const (
	SelfPickup    PickupType = "self_pickup"
	OwnerDelivery PickupType = "owner_delivery"
)

// PriceBreakdown is the persisted result of the pricing engine.
// TotalAmount is always the sum of the other three components.
type PriceBreakdown struct {
	BaseRate       float64 `bson:"base_rate" json:"baseRate"`
	DriverCharge   float64 `bson:"driver_charge" json:"driverCharge"`
	DeliveryCharge float64 `bson:"delivery_charge" json:"deliveryCharge"`
	TotalAmount    float64 `bson:"total_amount" json:"totalAmount"`
}

// Rating is set once by the beneficiary after completion.
type Rating struct {
	Score   int    `bson:"score" json:"score"`
	Comment string `bson:"comment,omitempty" json:"comment,omitempty"`
}

// Booking is a rental request and, once confirmed, a reservation of a
// listing for a time window. Bookings are never deleted; terminal
// statuses keep them around as history.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	EquipmentID string `bson:"equipment_id" json:"equipmentId"`
	OwnerID     string `bson:"owner_id" json:"ownerId"`

	// Beneficiary is the farmer who receives the rental. CreatedBy is the
	// acting user; the two differ when a sahayak books on a farmer's behalf.
	Beneficiary string `bson:"beneficiary" json:"beneficiary"`
	CreatedBy   string `bson:"created_by" json:"createdBy"`

	// Participants is the de-duplicated union of owner, creator and
	// beneficiary; every id in it has read access to the booking.
	Participants []string `bson:"participants" json:"participants"`

	BookingType BookingType `bson:"booking_type" json:"bookingType"`
	StartDate   time.Time   `bson:"start_date" json:"startDate"`
	EndDate     time.Time   `bson:"end_date" json:"endDate"`

	RequiresDriver bool       `bson:"requires_driver" json:"requiresDriver"`
	PickupType     PickupType `bson:"pickup_type" json:"pickupType"`

	PriceBreakdown PriceBreakdown `bson:"price_breakdown" json:"priceBreakdown"`

	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"paymentStatus"`

	// CompletionOtp is generated when the owner confirms and is shared
	// out-of-band; completion requires presenting it back.
	CompletionOtp string `bson:"completion_otp,omitempty" json:"-"`

	Rating *Rating `bson:"rating,omitempty" json:"rating,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasParticipant reports whether the given user may read this booking.
func (b *Booking) HasParticipant(userID string) bool {
	for _, p := range b.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
