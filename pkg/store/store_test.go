package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UBF21/Vali-Validation/pkg/config"
	"github.com/UBF21/Vali-Validation/pkg/store"
)

func TestConfig_Load(t *testing.T) {
	t.Parallel()

	var cfg store.Config
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
		"PG_CONN_URL":          "postgres://u:p@localhost:5432/app",
		"REDIS_URL":            "redis://localhost:6379/1",
		"STORE_RETRY_ATTEMPTS": "5",
	}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost:5432/app", cfg.Postgres.URL)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	assert.Empty(t, cfg.Mongo.URL)
	assert.Equal(t, "vali", cfg.Mongo.Database)
	assert.Equal(t, 5, cfg.Retry.Attempts)
	assert.Equal(t, 2*time.Second, cfg.Retry.Interval)
}

func TestConnect_NotConfigured(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rc := store.RetryConfig{Attempts: 1}

	_, err := store.ConnectPostgres(ctx, store.PostgresConfig{}, rc)
	assert.ErrorIs(t, err, store.ErrNotConfigured)

	_, err = store.ConnectRedis(ctx, store.RedisConfig{}, rc)
	assert.ErrorIs(t, err, store.ErrNotConfigured)

	_, err = store.ConnectMongo(ctx, store.MongoConfig{}, rc)
	assert.ErrorIs(t, err, store.ErrNotConfigured)
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rc := store.RetryConfig{Attempts: 1}

	_, err := store.ConnectPostgres(ctx, store.PostgresConfig{URL: "postgres://localhost:notaport/db"}, rc)
	assert.ErrorIs(t, err, store.ErrInvalidURL)

	_, err = store.ConnectRedis(ctx, store.RedisConfig{URL: "http://localhost:6379"}, rc)
	assert.ErrorIs(t, err, store.ErrInvalidURL)

	_, err = store.ConnectMongo(ctx, store.MongoConfig{URL: "not-a-mongo-uri"}, rc)
	assert.ErrorIs(t, err, store.ErrInvalidURL)
}

func TestConnect_GivesUpWhenContextEnds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// Nothing listens on port 1.
	start := time.Now()
	_, err := store.ConnectRedis(ctx,
		store.RedisConfig{URL: "redis://127.0.0.1:1/0"},
		store.RetryConfig{Attempts: 10, Interval: time.Second},
	)
	assert.ErrorIs(t, err, store.ErrConnect)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
