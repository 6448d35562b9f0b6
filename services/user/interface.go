package user

import (
	"context"

	"agrirent/models"
)

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Phone string          `json:"phone"`
	Role  models.UserRole `json:"role"`
	Token string          `json:"token"`
}

// UserService is the identity provider behind every caller id the
// booking service receives.
type UserService interface {
	Register(ctx context.Context, name, phone, village, password string, role models.UserRole) (*AuthResponse, error)
	Authenticate(ctx context.Context, phone, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
