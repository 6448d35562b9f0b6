package listingRepo

import (
	"context"
	"errors"

	"agrirent/models"
)

// ErrNotFound is returned when no listing matches the given id.
var ErrNotFound = errors.New("equipment listing not found")

// ListingFilter narrows a marketplace listing search. Zero values mean
// "no constraint"; Keywords match against name and village.
type ListingFilter struct {
	EquipmentType string
	Keywords      []string
	OnlyAvailable bool
}

// ListingRepository defines the interface for equipment listing data access.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.EquipmentListing) error
	GetByID(ctx context.Context, id string) (*models.EquipmentListing, error)
	Update(ctx context.Context, listing *models.EquipmentListing) error
	List(ctx context.Context, filter ListingFilter) ([]models.EquipmentListing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.EquipmentListing, error)
}
