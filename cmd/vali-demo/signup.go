package main

import (
	"context"
	"strings"

	"github.com/UBF21/Vali-Validation/pkg/checks"
	"github.com/UBF21/Vali-Validation/pkg/validator"
)

type signupRequest struct {
	Username        string `json:"username" yaml:"username"`
	Email           string `json:"email" yaml:"email"`
	Password        string `json:"password" yaml:"password"`
	ConfirmPassword string `json:"confirm_password" yaml:"confirm_password"`
	Country         string `json:"country" yaml:"country"`
	Age             int    `json:"age" yaml:"age"`
	Website         string `json:"website,omitempty" yaml:"website,omitempty"`
}

// lookups holds the optional store backed checks. A nil field skips its check.
type lookups struct {
	users       checks.RowQuerier
	reserved    checks.SetMemberChecker
	reservedKey string
	countries   checks.DocumentCounter
}

var fallbackCountries = []string{"AR", "BO", "BR", "CL", "CO", "EC", "MX", "PE", "UY"}

func newSignupValidator(deps lookups, opts ...validator.Option) *validator.Validator[signupRequest] {
	v := validator.New[signupRequest](opts...)

	username := validator.RuleFor(v, "Username", func(r signupRequest) string { return r.Username }).
		NotEmpty().
		Length(3, 32).
		IsAlphanumeric()
	if deps.reserved != nil {
		username.MustAsync(checks.NotInRedisSet[string](deps.reserved, deps.reservedKey), "The Username is reserved.")
	}
	if deps.users != nil {
		username.MustAsync(checks.UniqueInPostgres[string](deps.users, "users", "username"), "The Username is already taken.")
	}

	email := validator.RuleFor(v, "Email", func(r signupRequest) string { return r.Email }).
		NotEmpty().
		Email().
		MaximumLength(254)
	if deps.users != nil {
		email.MustAsync(checks.UniqueInPostgres[string](deps.users, "users", "email"), "The Email is already registered.")
	}

	validator.RuleFor(v, "Password", func(r signupRequest) string { return r.Password }).
		NotEmpty().
		MinimumLength(8).
		Must(func(p string) bool { return strings.ContainsAny(p, "0123456789") }).
		WithMessage("The Password field must contain at least one digit.")

	confirm := validator.RuleFor(v, "ConfirmPassword", func(r signupRequest) string { return r.ConfirmPassword }).
		NotEmpty()
	validator.DependentRuleAsync(confirm,
		validator.Field("Password", func(r signupRequest) string { return r.Password }),
		func(_ context.Context, confirm, password string) (bool, error) { return confirm == password, nil },
		"The passwords do not match.",
	)

	country := validator.RuleFor(v, "Country", func(r signupRequest) string { return r.Country }).
		NotEmpty().
		Length(2, 2)
	if deps.countries != nil {
		country.MustAsync(checks.ExistsInMongo[string](deps.countries, "code"), "The Country is not supported.")
	} else {
		country.In(fallbackCountries...)
	}

	validator.RuleFor(v, "Age", func(r signupRequest) int { return r.Age }).
		NotZero().
		Between(13, 120)

	validator.RuleFor(v, "Website", func(r signupRequest) string { return r.Website }).
		Must(func(s string) bool { return s == "" || strings.HasPrefix(s, "https://") }).
		WithMessage("The Website field must use https.")

	return v
}
