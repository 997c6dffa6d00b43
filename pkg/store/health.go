package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Check reports whether a dependency is reachable.
type Check func(context.Context) error

func PostgresHealth(pool *pgxpool.Pool) Check {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(fmt.Errorf("%w: postgres", ErrHealthcheckFailed), err)
		}
		return nil
	}
}

func RedisHealth(client redis.UniversalClient) Check {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(fmt.Errorf("%w: redis", ErrHealthcheckFailed), err)
		}
		return nil
	}
}

func MongoHealth(db *mongo.Database) Check {
	return func(ctx context.Context) error {
		if err := db.Client().Ping(ctx, nil); err != nil {
			return errors.Join(fmt.Errorf("%w: mongodb", ErrHealthcheckFailed), err)
		}
		return nil
	}
}
