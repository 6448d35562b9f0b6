// File: database/repository/listing/listingMongoQueries.go
package listingRepo

import (
	"context"
	"fmt"
	"time"

	"agrirent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns marketplace listings matching the filter.
func (r *MongoListingRepo) List(ctx context.Context, filter ListingFilter) ([]models.EquipmentListing, error) {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.EquipmentType != "" {
		query["equipment_type"] = filter.EquipmentType
	}
	if filter.OnlyAvailable {
		query["availability_status"] = models.EquipmentAvailable
	}
	if len(filter.Keywords) > 0 {
		var clauses []bson.M
		for _, kw := range filter.Keywords {
			pattern := bson.M{"$regex": kw, "$options": "i"}
			clauses = append(clauses, bson.M{"name": pattern}, bson.M{"village": pattern})
		}
		query["$or"] = clauses
	}

	cursor, err := r.coll.Find(opCtx, query, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer cursor.Close(opCtx)

	var listings []models.EquipmentListing
	if err := cursor.All(opCtx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode equipment listings: %w", err)
	}
	return listings, nil
}

// ListByOwner returns every listing owned by the given user.
func (r *MongoListingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.EquipmentListing, error) {
	opCtx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(opCtx, bson.M{"owner_id": ownerID}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(opCtx)

	var listings []models.EquipmentListing
	if err := cursor.All(opCtx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode equipment listings for owner %s: %w", ownerID, err)
	}
	return listings, nil
}
