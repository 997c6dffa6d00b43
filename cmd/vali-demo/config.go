package main

import (
	"time"

	"github.com/UBF21/Vali-Validation/pkg/store"
	"github.com/UBF21/Vali-Validation/pkg/validator"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"` // LogLevel overrides the environment's default level when set.

	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	Migrate             bool   `env:"PG_MIGRATE" envDefault:"true"`
	ReservedUsernames   string `env:"REDIS_RESERVED_USERNAMES_KEY" envDefault:"usernames:reserved"`
	CountriesCollection string `env:"MONGODB_COUNTRIES_COLLECTION" envDefault:"countries"`

	Validator validator.Config
	Store     store.Config
}
