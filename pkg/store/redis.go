package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a client and waits until it answers PING. All
// attempts share cfg.ConnectTimeout.
func ConnectRedis(ctx context.Context, cfg RedisConfig, rc RetryConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: redis", ErrNotConfigured)
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)
	if err := retry(ctx, rc, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
