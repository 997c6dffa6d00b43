package checks

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SetMemberChecker is satisfied by *redis.Client, *redis.ClusterClient and
// redis.UniversalClient.
type SetMemberChecker interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// InRedisSet passes when the value is a member of the set at key.
func InRedisSet[P any](client SetMemberChecker, key string) Predicate[P] {
	if key == "" {
		panic(fmt.Errorf("%w: redis key is required", ErrInvalidTarget))
	}
	return func(ctx context.Context, value P) (bool, error) {
		v, ok := lookupValue(value)
		if !ok {
			return true, nil
		}

		member, err := client.SIsMember(ctx, key, v).Result()
		if err != nil {
			return false, errors.Join(ErrLookup, fmt.Errorf("redis set %s: %w", key, err))
		}
		return member, nil
	}
}

// NotInRedisSet passes when the value is not a member of the set at key,
// typically a deny list such as reserved usernames.
func NotInRedisSet[P any](client SetMemberChecker, key string) Predicate[P] {
	return negate(InRedisSet[P](client, key))
}
