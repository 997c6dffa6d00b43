package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ConnectMongo connects to MongoDB and returns the configured database.
func ConnectMongo(ctx context.Context, cfg MongoConfig, rc RetryConfig) (*mongo.Database, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: mongodb", ErrNotConfigured)
	}

	opts := options.Client().ApplyURI(cfg.URL)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	opts.SetMinPoolSize(cfg.MinPoolSize)

	// Connect only validates options; the ping below opens the connection.
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}

	if err := retry(ctx, rc, func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	return client.Database(cfg.Database), nil
}
