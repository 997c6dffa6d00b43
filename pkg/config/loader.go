package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option tunes a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix      string
	envFiles    []string
	environment map[string]string
}

// WithPrefix prepends prefix to every env tag, so `env:"ASYNC_TIMEOUT"` with
// prefix "SIGNUP_" reads SIGNUP_ASYNC_TIMEOUT.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing. Variables already
// present in the process environment are not overridden.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) { o.envFiles = append(o.envFiles, files...) }
}

// WithEnvironment parses from env instead of the process environment.
// Dotenv files are still read but only into the process environment, so they
// have no effect on this Load call.
func WithEnvironment(env map[string]string) Option {
	return func(o *loadOptions) { o.environment = env }
}

// Load parses environment variables into v according to its `env` struct tags.
//
// The default .env file in the working directory is loaded once per process
// if it exists. Files passed with WithEnvFiles are loaded on every call.
//
// Example:
//
//	type StoreConfig struct {
//		PostgresURL string        `env:"PG_CONN_URL,required"`
//		Timeout     time.Duration `env:"STORE_TIMEOUT" envDefault:"2s"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
