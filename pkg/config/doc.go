// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into the
// process environment, and github.com/caarlos0/env/v11, which maps the
// environment onto struct fields through `env` and `envDefault` tags.
//
// # Usage
//
//	var cfg validator.Config
//	if err := config.Load(&cfg, config.WithPrefix("SIGNUP_")); err != nil {
//	    log.Fatal(err)
//	}
//
// Tests can bypass the process environment entirely:
//
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
//	    "VALIDATOR_ASYNC_TIMEOUT": "250ms",
//	}))
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig and unreadable env files
// with ErrLoadingEnvFile, so callers can use errors.Is. MustLoad panics
// instead of returning.
package config
