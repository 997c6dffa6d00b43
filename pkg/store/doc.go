// Package store connects the data stores that back asynchronous validation
// checks: PostgreSQL through a pgx pool, Redis through go-redis and MongoDB
// through the official v2 driver.
//
// Every Connect function retries according to RetryConfig, pings the store
// before returning and fails fast with ErrNotConfigured when its URL is empty,
// so callers can treat each store as optional:
//
//	var cfg store.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	pool, err := store.ConnectPostgres(ctx, cfg.Postgres, cfg.Retry)
//	switch {
//	case errors.Is(err, store.ErrNotConfigured):
//		// run without database backed checks
//	case err != nil:
//		return err
//	}
//
// MigratePostgres applies goose migrations from any fs.FS, typically an
// embedded directory. PostgresHealth, RedisHealth and MongoHealth return
// probes suitable for a readiness endpoint.
package store
