package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"alcyxob/training-client/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "session_kv"

// sessionEntry is one stored key. Values arrive already sealed.
type sessionEntry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoSessionStore implements repository.SessionStore on a MongoDB collection.
type mongoSessionStore struct {
	collection *mongo.Collection
}

// NewMongoSessionStore expects a connected *mongo.Database instance.
func NewMongoSessionStore(db *mongo.Database) repository.SessionStore {
	return &mongoSessionStore{
		collection: db.Collection(sessionCollectionName),
	}
}

// Get returns the stored value or repository.ErrNotFound.
func (r *mongoSessionStore) Get(ctx context.Context, key string) (string, error) {
	var entry sessionEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

// Set upserts the value under key.
func (r *mongoSessionStore) Set(ctx context.Context, key, value string) error {
	update := bson.M{
		"$set": bson.M{
			"value":     value,
			"updatedAt": time.Now().UTC(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	return err
}

// Delete removes key. A missing key is not an error.
func (r *mongoSessionStore) Delete(ctx context.Context, key string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// EnsureSessionIndexes creates the indexes of the session collection. Keys are unique
// through _id; updatedAt is indexed for finding entries by age when cleaning up.
// Call this once during application startup.
func EnsureSessionIndexes(ctx context.Context, db *mongo.Database) {
	collection := db.Collection(sessionCollectionName)
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "updatedAt", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
