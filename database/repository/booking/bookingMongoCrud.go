// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"agrirent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(opCtx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID fetches a booking by its id.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(opCtx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// UpdateIfStatus replaces the booking document only when its persisted
// status still equals expected. MatchedCount==0 means another writer got
// there first (or the booking vanished) and the caller must re-read.
func (r *MongoBookingRepo) UpdateIfStatus(ctx context.Context, booking *models.Booking, expected models.BookingStatus) error {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.UpdatedAt = time.Now()
	filter := bson.M{"id": booking.ID, "status": expected}
	update := bson.M{"$set": booking}

	result, err := r.coll.UpdateOne(opCtx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", booking.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrStaleStatus
	}
	return nil
}

// SetRatingIfUnset writes the rating only when the booking is completed
// and not yet rated, so a rating can never be overwritten.
func (r *MongoBookingRepo) SetRatingIfUnset(ctx context.Context, id string, rating models.Rating) error {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": models.BookingCompleted,
		"rating": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"rating":     rating,
		"updated_at": time.Now(),
	}}

	result, err := r.coll.UpdateOne(opCtx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set rating for booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrStaleStatus
	}
	return nil
}

// SetPaymentStatus updates the independent payment status field.
func (r *MongoBookingRepo) SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) error {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"payment_status": status,
		"updated_at":     time.Now(),
	}}

	result, err := r.coll.UpdateOne(opCtx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set payment status for booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
