// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mongo provides a managed MongoDB client for the document store
// driver, which is the default backend for users and movies.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/taibuivan/artcine/internal/platform/constants"
)

const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 2 * time.Second
	maxPoolSize    = 25
)

// NewClient connects to MongoDB and returns a handle on the named database.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - uri: A mongodb:// or mongodb+srv:// connection string.
//   - database: The database holding the users and movies collections.
//   - logger: Structured logger for connection events.
func NewClient(ctx context.Context, uri, database string, logger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetAppName(constants.AppName).
		SetConnectTimeout(connectTimeout).
		SetMaxPoolSize(maxPoolSize).
		SetTimeout(constants.GlobalRequestTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo: failed to connect: %w", err)
	}

	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	logger.Info("mongo_client_connected",
		slog.String("database", database),
		slog.Int("max_pool_size", maxPoolSize),
	)

	return client, client.Database(database), nil
}

// Ping verifies that the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: ping failed: %w", err)
	}

	return nil
}

// EnsureIndexes creates the indexes the stores rely on. It is idempotent.
//
// The unique index on users.username backs the username uniqueness rule;
// the movie indexes serve the title, genre and director lookups.
func EnsureIndexes(ctx context.Context, database *mongo.Database, logger *slog.Logger) error {
	plan := map[string][]mongo.IndexModel{
		constants.CollectionUsers: {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("username_unique"),
			},
		},
		constants.CollectionMovies: {
			{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetName("title")},
			{Keys: bson.D{{Key: "genre.name", Value: 1}}, Options: options.Index().SetName("genre_name")},
			{Keys: bson.D{{Key: "director.name", Value: 1}}, Options: options.Index().SetName("director_name")},
		},
	}

	for collection, models := range plan {
		names, err := database.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("mongo: failed to create indexes on %s: %w", collection, err)
		}
		logger.Debug("mongo_indexes_ensured", slog.String("collection", collection), slog.Any("indexes", names))
	}

	return nil
}
