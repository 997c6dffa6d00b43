package store

import "errors"

var (
	ErrNotConfigured     = errors.New("store: connection URL not configured")
	ErrInvalidURL        = errors.New("store: invalid connection URL")
	ErrConnect           = errors.New("store: failed to connect")
	ErrHealthcheckFailed = errors.New("store: healthcheck failed")
	ErrMigrate           = errors.New("store: failed to apply migrations")
)
