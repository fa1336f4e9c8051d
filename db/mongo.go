package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"portfolio-api/config"
	"portfolio-api/internal/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := cfg.Mongo.URI
		if uri == "" {
			// Fallback for local docker-compose default
			uri = "mongodb://localhost:27017/portfolio"
		}
		dbName := cfg.Mongo.DBName
		if dbName == "" {
			dbName = "portfolio"
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// comments: (post_slug, created_at desc) serves the newest-first listing
	mi := mongo.IndexModel{
		Keys:    bson.D{{Key: "post_slug", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_post_slug_created_at"),
	}
	if _, err := d.Collection("comments").Indexes().CreateOne(ctx, mi); err != nil {
		return err
	}
	return nil
}
