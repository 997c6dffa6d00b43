package checks

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DocumentCounter is satisfied by *mongo.Collection.
type DocumentCounter interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// ExistsInMongo passes when a document of coll has field equal to the value.
func ExistsInMongo[P any](coll DocumentCounter, field string) Predicate[P] {
	if field == "" {
		panic(fmt.Errorf("%w: mongo field is required", ErrInvalidTarget))
	}
	return func(ctx context.Context, value P) (bool, error) {
		v, ok := lookupValue(value)
		if !ok {
			return true, nil
		}

		n, err := coll.CountDocuments(ctx, bson.D{{Key: field, Value: v}}, options.Count().SetLimit(1))
		if err != nil {
			return false, errors.Join(ErrLookup, fmt.Errorf("mongo field %s: %w", field, err))
		}
		return n > 0, nil
	}
}

// UniqueInMongo passes when no document of coll has field equal to the value.
func UniqueInMongo[P any](coll DocumentCounter, field string) Predicate[P] {
	return negate(ExistsInMongo[P](coll, field))
}
