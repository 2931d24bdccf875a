package client

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClientInterface defines the database connection operations needed by
// the rest of the service.
type MongoClientInterface interface {
	Database() *mongo.Database
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// MongoClient wraps a connected mongo client and the service database. It is
// constructed once at startup and closed on shutdown; there is no package
// level connection state.
type MongoClient struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoClient connects to MongoDB, verifies the connection with a ping and
// returns a client bound to the given database.
func NewMongoClient(ctx context.Context, uri, dbName string) (*MongoClient, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoClient{
		client:   client,
		database: client.Database(dbName),
	}, nil
}

// Database returns the service database handle.
func (c *MongoClient) Database() *mongo.Database {
	return c.database
}

// Ping verifies the connection is still live.
func (c *MongoClient) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (c *MongoClient) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
