package listingRepo

import (
	"context"
	"time"

	"agrirent/database"

	"go.mongodb.org/mongo-driver/mongo"
)

const listingCollection = "equipment_listings"

// MongoListingRepo implements ListingRepository backed by MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo returns a repository over the equipment listings collection.
func NewMongoListingRepo() *MongoListingRepo {
	return &MongoListingRepo{coll: database.Collection(listingCollection)}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
