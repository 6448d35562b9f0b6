// File: database/repository/listing/listingMongoCrud.go
package listingRepo

import (
	"context"
	"fmt"
	"time"

	"agrirent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new listing document.
func (r *MongoListingRepo) Create(ctx context.Context, listing *models.EquipmentListing) error {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if _, err := r.coll.InsertOne(opCtx, listing); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// GetByID fetches a listing by its id.
func (r *MongoListingRepo) GetByID(ctx context.Context, id string) (*models.EquipmentListing, error) {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	var listing models.EquipmentListing
	err := r.coll.FindOne(opCtx, bson.M{"id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing %s: %w", id, err)
	}
	return &listing, nil
}

// Update modifies an existing listing document.
func (r *MongoListingRepo) Update(ctx context.Context, listing *models.EquipmentListing) error {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	listing.UpdatedAt = time.Now()
	filter := bson.M{"id": listing.ID}
	update := bson.M{"$set": listing}

	result, err := r.coll.UpdateOne(opCtx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update listing %s: %w", listing.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
