// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"agrirent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByEquipment returns bookings for a listing, optionally restricted
// to a set of statuses (the availability checker asks for confirmed and
// ongoing only).
func (r *MongoBookingRepo) ListByEquipment(ctx context.Context, equipmentID string, statusIn []models.BookingStatus) ([]models.Booking, error) {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"equipment_id": equipmentID}
	if len(statusIn) > 0 {
		filter["status"] = bson.M{"$in": statusIn}
	}

	cursor, err := r.coll.Find(opCtx, filter, options.Find().SetSort(bson.M{"start_date": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for equipment %s: %w", equipmentID, err)
	}
	defer cursor.Close(opCtx)

	var bookings []models.Booking
	if err := cursor.All(opCtx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for equipment %s: %w", equipmentID, err)
	}
	return bookings, nil
}

// ListByParticipant returns every booking the user can read.
func (r *MongoBookingRepo) ListByParticipant(ctx context.Context, userID string) ([]models.Booking, error) {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(opCtx, bson.M{"participants": userID}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(opCtx)

	var bookings []models.Booking
	if err := cursor.All(opCtx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// ListByOwner returns every booking against the owner's listings.
func (r *MongoBookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(opCtx, bson.M{"owner_id": ownerID}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(opCtx)

	var bookings []models.Booking
	if err := cursor.All(opCtx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for owner %s: %w", ownerID, err)
	}
	return bookings, nil
}
