package database

import (
	"context"
	"fmt"
	"time"

	"medtrack/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoConnection(cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.Info("Successfully connected to MongoDB")

	return client, client.Database(cfg.Database), nil
}

// MigrateMongo creates the unique email indexes and the participant indexes
// the appointment listing relies on.
func MigrateMongo(ctx context.Context, db *mongo.Database, cfg config.StoreConfig) error {
	indexes := map[string][]mongo.IndexModel{
		cfg.PatientsTable: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		cfg.DoctorsTable: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		cfg.AppointmentsTable: {
			{Keys: bson.D{{Key: "doctor_id", Value: 1}}},
			{Keys: bson.D{{Key: "patient_id", Value: 1}}},
		},
		cfg.TransitionsTable: {
			{Keys: bson.D{{Key: "appointment_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		logrus.Infof("Ensured indexes on collection %s", collection)
	}
	return nil
}
