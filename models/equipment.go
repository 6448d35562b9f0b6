package models

import "time"

// EquipmentAvailability is the owner-declared listing state.
type EquipmentAvailability string

const (
	EquipmentAvailable   EquipmentAvailability = "available"
	EquipmentMaintenance EquipmentAvailability = "maintenance"
)

// EquipmentRate holds a listing's raw pricing fields. Nil pointers mean
// the rate is not offered; a listing with neither hourly nor daily rate
// is "price on request" and cannot be priced automatically.
type EquipmentRate struct {
	PerHour *float64 `bson:"per_hour,omitempty" json:"perHour,omitempty"`
	PerDay  *float64 `bson:"per_day,omitempty" json:"perDay,omitempty"`
}

// EquipmentListing is a piece of equipment an owner offers for rent.
type EquipmentListing struct {
	ID            string        `bson:"id" json:"id"`
	OwnerID       string        `bson:"owner_id" json:"ownerId"`
	Name          string        `bson:"name" json:"name"`
	EquipmentType string        `bson:"equipment_type" json:"equipmentType"`
	Village       string        `bson:"village,omitempty" json:"village,omitempty"`
	Rate          EquipmentRate `bson:"rate" json:"rate"`

	// Optional add-on pricing. Driver time is billed per elapsed hour
	// regardless of the booking type; delivery is a flat fee.
	DriverChargePerHour *float64 `bson:"driver_charge_per_hour,omitempty" json:"driverChargePerHour,omitempty"`
	DeliveryFee         *float64 `bson:"delivery_fee,omitempty" json:"deliveryFee,omitempty"`

	AvailabilityStatus EquipmentAvailability `bson:"availability_status" json:"availabilityStatus"`
	Verified           bool                  `bson:"verified" json:"verified"`

	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
