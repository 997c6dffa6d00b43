package predicate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UBF21/Vali-Validation/pkg/predicate"
)

func TestSignPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		positive bool
		negative bool
		notZero  bool
	}{
		{"positive int", 3, true, false, true},
		{"negative int", -3, false, true, true},
		{"zero int", 0, false, false, false},
		{"positive uint", uint8(1), true, false, true},
		{"zero uint", uint(0), false, false, false},
		{"negative float", -0.5, false, true, true},
		{"zero float", 0.0, false, false, false},
		{"NaN", math.NaN(), false, false, true},
		{"positive infinity", math.Inf(1), true, false, true},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := predicate.Positive(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.positive, pos)

			neg, err := predicate.Negative(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.negative, neg)

			nz, err := predicate.NotZero(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.notZero, nz)
		})
	}

	t.Run("non-numeric value is an error", func(t *testing.T) {
		ok, err := predicate.Positive("5")
		assert.False(t, ok)
		assert.ErrorIs(t, err, predicate.ErrNotNumeric)
	})
}
