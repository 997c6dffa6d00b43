package store

import "time"

// Config groups the connection settings of every supported store. A store
// whose URL is empty is not configured and its Connect function returns
// ErrNotConfigured.
type Config struct {
	Postgres PostgresConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	Retry    RetryConfig
}

type PostgresConfig struct {
	URL               string        `env:"PG_CONN_URL"`                            // URL is the pgx connection string.
	MaxConns          int32         `env:"PG_MAX_CONNS" envDefault:"10"`           // MaxConns caps the pool size.
	MinConns          int32         `env:"PG_MIN_CONNS" envDefault:"1"`            // MinConns is kept open while idle.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // HealthCheckPeriod is the pool's own liveness interval.
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // MaxConnIdleTime closes connections idle for longer.
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // MaxConnLifetime recycles long lived connections.
	MigrationsTable   string        `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}

type RedisConfig struct {
	URL            string        `env:"REDIS_URL"`                              // URL in the form redis://:password@localhost:6379/0.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"` // ConnectTimeout bounds all connection attempts together.
}

type MongoConfig struct {
	URL            string        `env:"MONGODB_URL"`
	Database       string        `env:"MONGODB_DATABASE" envDefault:"vali"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize    uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"50"`
	MinPoolSize    uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
}

// RetryConfig controls how often connecting is attempted. Attempt n waits
// n times Interval before the next one.
type RetryConfig struct {
	Attempts int           `env:"STORE_RETRY_ATTEMPTS" envDefault:"3"`
	Interval time.Duration `env:"STORE_RETRY_INTERVAL" envDefault:"2s"`
}
