package checks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/UBF21/Vali-Validation/pkg/checks"
)

type fakeCollection struct {
	docs   map[string][]any
	err    error
	filter bson.D
	calls  int
}

func (c *fakeCollection) CountDocuments(_ context.Context, filter any, _ ...options.Lister[options.CountOptions]) (int64, error) {
	c.calls++
	if c.err != nil {
		return 0, c.err
	}
	c.filter = filter.(bson.D)
	var n int64
	for _, e := range c.filter {
		for _, v := range c.docs[e.Key] {
			if v == e.Value {
				n++
			}
		}
	}
	return n, nil
}

func TestMongoChecks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	coll := &fakeCollection{docs: map[string][]any{"slug": {"launch-week", "pricing"}}}

	ok, err := checks.ExistsInMongo[string](coll, "slug")(ctx, "pricing")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, bson.D{{Key: "slug", Value: "pricing"}}, coll.filter)

	ok, err = checks.UniqueInMongo[string](coll, "slug")(ctx, "pricing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = checks.UniqueInMongo[string](coll, "slug")(ctx, "new-post")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMongoChecks_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("server selection timeout")
	_, err := checks.ExistsInMongo[string](&fakeCollection{err: boom}, "slug")(context.Background(), "x")
	assert.ErrorIs(t, err, checks.ErrLookup)
	assert.ErrorIs(t, err, boom)

	assert.Panics(t, func() { checks.UniqueInMongo[string](&fakeCollection{}, "") })
}

func TestUniqueInMongo_EmptyValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	coll := &fakeCollection{docs: map[string][]any{"slug": {""}}}

	ok, err := checks.UniqueInMongo[string](coll, "slug")(ctx, "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = checks.UniqueInMongo[*string](coll, "slug")(ctx, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Zero(t, coll.calls)
}
