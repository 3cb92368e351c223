package persistence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/finance-tracker/goals/internal/application/adapter"
)

// keyValueDocument is the MongoDB document holding one stored value.
type keyValueDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoStore implements the adapter.KeyValueStore interface on a collection
// keyed by _id.
type mongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a new MongoDB-backed key-value store.
func NewMongoStore(collection *mongo.Collection) adapter.KeyValueStore {
	return &mongoStore{
		collection: collection,
	}
}

// Get retrieves the value stored under key.
func (s *mongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc keyValueDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(doc.Value), true, nil
}

// Set replaces the document for key, inserting it when absent.
func (s *mongoStore) Set(ctx context.Context, key string, value []byte) error {
	doc := keyValueDocument{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

// HealthCheck pings the MongoDB deployment.
func (s *mongoStore) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.collection.Database().Client().Ping(ctx, nil); err != nil {
		slog.Error("MongoDB health check failed", "error", err)
		return false
	}
	return true
}
