package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UBF21/Vali-Validation/pkg/config"
)

type storeConfig struct {
	URL     string        `env:"STORE_URL" envDefault:"redis://localhost:6379/0"`
	Timeout time.Duration `env:"STORE_TIMEOUT" envDefault:"2s"`
	Enabled bool          `env:"STORE_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg storeConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/0", cfg.URL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.True(t, cfg.Enabled)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("STORE_URL", "redis://cache:6379/1")
	t.Setenv("STORE_TIMEOUT", "150ms")

	var cfg storeConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "redis://cache:6379/1", cfg.URL)
	assert.Equal(t, 150*time.Millisecond, cfg.Timeout)
}

func TestLoad_Prefix(t *testing.T) {
	var cfg storeConfig
	err := config.Load(&cfg,
		config.WithPrefix("SIGNUP_"),
		config.WithEnvironment(map[string]string{
			"SIGNUP_STORE_ENABLED": "false",
			"STORE_ENABLED":        "true",
		}),
	)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ENVFILE_ONLY_STORE_URL=postgres://from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ENVFILE_ONLY_STORE_URL") })

	var cfg storeConfig
	err := config.Load(&cfg, config.WithEnvFiles(path), config.WithPrefix("ENVFILE_ONLY_"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://from-file", cfg.URL)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *storeConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("unparsable value", func(t *testing.T) {
		var cfg storeConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"STORE_TIMEOUT": "soon"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg storeConfig
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "absent.env")))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})

	assert.NotPanics(t, func() {
		var cfg storeConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}
