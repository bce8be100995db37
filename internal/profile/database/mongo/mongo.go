package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/Team-DAS/profile-cell/internal/profile/config"
)

// Connect creates the MongoDB client and verifies the connection with a
// primary ping before returning the configured database handle.
func Connect(cfg *config.MongoDBConfig) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.PoolSize)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		log.Printf("Error connecting to MongoDB: %v", err)
		return nil, nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Printf("Error pinging MongoDB: %v", err)
		return nil, nil, err
	}

	database := client.Database(cfg.Database)
	log.Printf("Successfully connected to MongoDB database: %s", cfg.Database)

	return client, database, nil
}

// Disconnect closes the MongoDB connection.
func Disconnect(client *mongo.Client) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}
