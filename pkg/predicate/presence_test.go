package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UBF21/Vali-Validation/pkg/predicate"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	var nilSlice []int
	var nilMap map[string]int
	s := "value"

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", nilPtr, true},
		{"nil slice", nilSlice, true},
		{"nil map", nilMap, true},
		{"empty string is not nil", "", false},
		{"zero int is not nil", 0, false},
		{"non-nil pointer", &s, false},
		{"empty non-nil slice", []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, predicate.IsNil(tt.value))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	blank := "   "
	word := "word"

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"empty string", "", true},
		{"whitespace only", " \t\n", true},
		{"pointer to whitespace", &blank, true},
		{"pointer to word", &word, false},
		{"text", "a", false},
		{"empty slice", []string{}, true},
		{"slice with items", []string{"a"}, false},
		{"empty map", map[string]int{}, true},
		{"zero int", 0, true},
		{"non-zero int", 7, false},
		{"false bool", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, predicate.IsEmpty(tt.value))
		})
	}
}
