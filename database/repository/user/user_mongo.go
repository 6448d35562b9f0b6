package userRepo

import (
	"context"
	"time"

	"agrirent/database"

	"go.mongodb.org/mongo-driver/mongo"
)

const userCollection = "users"

// MongoUserRepo implements UserRepository backed by MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a repository over the users collection.
func NewMongoUserRepo() *MongoUserRepo {
	return &MongoUserRepo{coll: database.Collection(userCollection)}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
