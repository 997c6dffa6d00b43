package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UBF21/Vali-Validation/pkg/predicate"
)

func TestCollectionPredicates(t *testing.T) {
	t.Parallel()

	t.Run("count", func(t *testing.T) {
		assert.True(t, predicate.Count([]string{"a", "b"}, 2))
		assert.True(t, predicate.Count([3]int{}, 3))
		assert.True(t, predicate.Count(map[int]int{1: 1}, 1))
		assert.False(t, predicate.Count([]string{"a"}, 2))
		assert.False(t, predicate.Count("ab", 2))
		assert.False(t, predicate.Count(nil, 0))
	})

	t.Run("has items", func(t *testing.T) {
		var empty []int
		assert.True(t, predicate.HasItems([]int{1}))
		assert.False(t, predicate.HasItems([]int{}))
		assert.False(t, predicate.HasItems(empty))
		assert.False(t, predicate.HasItems("text"))
	})
}
