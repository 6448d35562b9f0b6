package models

import "time"

// UserRole mirrors the roles the marketplace front-end knows about.
type UserRole string

const (
	RoleFarmer  UserRole = "farmer"
	RoleOwner   UserRole = "owner"
	RoleDriver  UserRole = "driver"
	RoleSahayak UserRole = "sahayak"
)

// User is the identity record behind every caller id the booking
// service receives.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`
	Village      string    `bson:"village,omitempty" json:"village,omitempty"`
	Role         UserRole  `bson:"role" json:"role"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
