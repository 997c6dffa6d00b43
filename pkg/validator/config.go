package validator

import (
	"time"

	"github.com/UBF21/Vali-Validation/pkg/config"
)

// Config holds environment driven engine settings.
type Config struct {
	AsyncTimeout time.Duration `env:"VALIDATOR_ASYNC_TIMEOUT" envDefault:"0s"` // AsyncTimeout bounds each asynchronous rule; 0 disables the bound.
}

// LoadConfig reads Config from the environment.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a Validator from cfg. Explicit options are applied
// after cfg and win over it.
func NewFromConfig[T any](cfg Config, opts ...Option) *Validator[T] {
	return New[T](append([]Option{WithAsyncTimeout(cfg.AsyncTimeout)}, opts...)...)
}
