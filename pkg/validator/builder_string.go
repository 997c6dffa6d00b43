package validator

import (
	"regexp"

	"github.com/UBF21/Vali-Validation/pkg/predicate"
)

// MinimumLength requires at least n characters, or n elements for collections.
func (b *RuleBuilder[T, P]) MinimumLength(n int) *RuleBuilder[T, P] {
	b.requireType("MinimumLength", "a string or collection", hasLength)
	return b.add(lift[P](func(v any) bool { return predicate.MinLength(v, n) }), b.msg(msgMinLength, n))
}

// MaximumLength allows at most n characters, or n elements for collections.
func (b *RuleBuilder[T, P]) MaximumLength(n int) *RuleBuilder[T, P] {
	b.requireType("MaximumLength", "a string or collection", hasLength)
	return b.add(lift[P](func(v any) bool { return predicate.MaxLength(v, n) }), b.msg(msgMaxLength, n))
}

// Length requires a length within [min, max].
func (b *RuleBuilder[T, P]) Length(min, max int) *RuleBuilder[T, P] {
	b.requireType("Length", "a string or collection", hasLength)
	if min > max {
		configPanic(b.property.Name, "Length", "min must not exceed max")
	}
	return b.add(lift[P](func(v any) bool { return predicate.LengthBetween(v, min, max) }), b.msg(msgLength, min, max))
}

// Matches requires the value to match pattern. An invalid pattern panics with
// a ConfigError.
func (b *RuleBuilder[T, P]) Matches(pattern string) *RuleBuilder[T, P] {
	b.requireType("Matches", "a string", isStringType)
	re, err := regexp.Compile(pattern)
	if err != nil {
		configPanic(b.property.Name, "Matches", err.Error())
	}
	return b.add(lift[P](func(v any) bool { return predicate.Matches(v, re) }), b.msg(msgMatches))
}

func (b *RuleBuilder[T, P]) Email() *RuleBuilder[T, P] {
	b.requireType("Email", "a string", isStringType)
	return b.add(lift[P](predicate.Email), b.msg(msgEmail))
}

// URL requires an absolute http or https URL.
func (b *RuleBuilder[T, P]) URL() *RuleBuilder[T, P] {
	b.requireType("URL", "a string", isStringType)
	return b.add(lift[P](predicate.URL), b.msg(msgURL))
}

func (b *RuleBuilder[T, P]) UUID() *RuleBuilder[T, P] {
	b.requireType("UUID", "a string", isStringType)
	return b.add(lift[P](predicate.UUID), b.msg(msgUUID))
}

func (b *RuleBuilder[T, P]) StartsWith(prefix string) *RuleBuilder[T, P] {
	b.requireType("StartsWith", "a string", isStringType)
	return b.add(lift[P](func(v any) bool { return predicate.HasPrefix(v, prefix) }), b.msg(msgStartsWith, prefix))
}

func (b *RuleBuilder[T, P]) EndsWith(suffix string) *RuleBuilder[T, P] {
	b.requireType("EndsWith", "a string", isStringType)
	return b.add(lift[P](func(v any) bool { return predicate.HasSuffix(v, suffix) }), b.msg(msgEndsWith, suffix))
}

// Contains requires substr to occur in the value, optionally ignoring case.
func (b *RuleBuilder[T, P]) Contains(substr string, ignoreCase bool) *RuleBuilder[T, P] {
	b.requireType("Contains", "a string", isStringType)
	return b.add(lift[P](func(v any) bool { return predicate.Contains(v, substr, ignoreCase) }), b.msg(msgContains, substr))
}

// IsAlpha requires ASCII letters only.
func (b *RuleBuilder[T, P]) IsAlpha() *RuleBuilder[T, P] {
	b.requireType("IsAlpha", "a string", isStringType)
	return b.add(lift[P](predicate.Alpha), b.msg(msgAlpha))
}

// IsAlphanumeric requires ASCII letters and digits only.
func (b *RuleBuilder[T, P]) IsAlphanumeric() *RuleBuilder[T, P] {
	b.requireType("IsAlphanumeric", "a string", isStringType)
	return b.add(lift[P](predicate.Alphanumeric), b.msg(msgAlphanumeric))
}

// IsNumeric requires ASCII digits only.
func (b *RuleBuilder[T, P]) IsNumeric() *RuleBuilder[T, P] {
	b.requireType("IsNumeric", "a string", isStringType)
	return b.add(lift[P](predicate.Numeric), b.msg(msgNumeric))
}
