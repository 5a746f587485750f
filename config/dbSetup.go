package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	VehicleCollection *mongo.Collection
	UserCollection    *mongo.Collection

	// Memoized on package state so every caller shares one connection for
	// the lifetime of the process.
	mongoClient *mongo.Client
	mongoErr    error
	mongoOnce   sync.Once
)

func ConnectDB() (*mongo.Client, error) {
	mongoOnce.Do(func() {
		uri := os.Getenv("MONGODB_URI")
		if uri == "" {
			mongoErr = fmt.Errorf("MONGODB_URI not set in environment")
			return
		}

		clientOptions := options.Client().ApplyURI(uri)
		client, err := mongo.Connect(context.TODO(), clientOptions)
		if err != nil {
			mongoErr = fmt.Errorf("error connecting to database: %v", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := client.Ping(ctx, nil); err != nil {
			mongoErr = fmt.Errorf("MongoDB ping failed: %v", err)
			return
		}

		log.Println("Connected to MongoDB")
		mongoClient = client
	})
	return mongoClient, mongoErr
}

func InitCollections(client *mongo.Client) {
	dbName := os.Getenv("DB")
	VehicleCollection = client.Database(dbName).Collection("vehicles")
	UserCollection = client.Database(dbName).Collection("users")
}

func CloseDBConnection(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Fatalf("Error closing database connection: %v", err)
	}
	log.Println("MongoDB connection closed")
}
