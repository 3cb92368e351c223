// Package mongodb provides the MongoDB connection.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/finance-tracker/goals/config"
)

// Connection wraps a MongoDB client and the collection holding goal data.
type Connection struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewConnection connects and pings the configured deployment.
func NewConnection(ctx context.Context, cfg *config.MongoConfig) (*Connection, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	slog.Info("MongoDB connection established", "database", cfg.Database, "collection", cfg.Collection)

	return &Connection{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Collection returns the key-value collection.
func (c *Connection) Collection() *mongo.Collection {
	return c.collection
}

// Close disconnects the client.
func (c *Connection) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %w", err)
	}
	slog.Info("MongoDB connection closed")
	return nil
}
