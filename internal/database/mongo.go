package database

import (
	"context"
	"fmt"
	"time"

	"anime-quotes-backend/internal/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDatabase is the document-store counterpart of Database.
type MongoDatabase struct {
	client *mongo.Client
	db     *mongo.Database
	config config.MongoConfig
}

func ConnectMongo(cfg config.MongoConfig) (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize))
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to MongoDB")
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logrus.WithError(err).Error("Failed to ping MongoDB")
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logrus.WithField("database", cfg.DBName).Info("MongoDB connection established successfully")

	m := &MongoDatabase{
		client: client,
		db:     client.Database(cfg.DBName),
		config: cfg,
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		logrus.WithError(err).Error("Failed to create MongoDB indexes")
		return nil, fmt.Errorf("failed to create mongodb indexes: %w", err)
	}

	return m, nil
}

func (m *MongoDatabase) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *MongoDatabase) GetQueryTimeout() time.Duration {
	return m.config.QueryTimeout
}

func (m *MongoDatabase) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoDatabase) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes mirrors the unique and lookup indexes the postgres schema declares.
func (m *MongoDatabase) ensureIndexes(ctx context.Context) error {
	logrus.Info("Ensuring MongoDB indexes...")

	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		"anime": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"characters": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "anime_slug", Value: 1}}},
		},
		"quotes": {
			{Keys: bson.D{{Key: "anime_slug", Value: 1}}},
			{Keys: bson.D{{Key: "character_slug", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "featured", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := m.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("collection %s: %w", name, err)
		}
	}

	logrus.Info("MongoDB indexes ready")
	return nil
}
