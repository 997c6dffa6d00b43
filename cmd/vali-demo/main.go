// Command vali-demo serves a signup endpoint validated with the validator
// package. PostgreSQL, Redis and MongoDB are optional; each configured store
// adds its checks to the signup rules.
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/UBF21/Vali-Validation/pkg/config"
	"github.com/UBF21/Vali-Validation/pkg/logger"
	"github.com/UBF21/Vali-Validation/pkg/store"
	"github.com/UBF21/Vali-Validation/pkg/validator"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("vali-demo stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	deps := lookups{reservedKey: cfg.ReservedUsernames}
	var ready []store.Check
	var accts accounts
	accts.log = log

	pool, err := store.ConnectPostgres(ctx, cfg.Store.Postgres, cfg.Store.Retry)
	switch {
	case errors.Is(err, store.ErrNotConfigured):
		log.Info("postgres not configured, uniqueness checks disabled")
	case err != nil:
		return err
	default:
		defer pool.Close()
		if cfg.Migrate {
			if err := store.MigratePostgres(ctx, pool, cfg.Store.Postgres, migrations, "migrations", log); err != nil {
				return err
			}
		}
		deps.users = pool
		accts.db = pool
		ready = append(ready, store.PostgresHealth(pool))
	}

	rdb, err := store.ConnectRedis(ctx, cfg.Store.Redis, cfg.Store.Retry)
	switch {
	case errors.Is(err, store.ErrNotConfigured):
		log.Info("redis not configured, reserved username check disabled")
	case err != nil:
		return err
	default:
		defer rdb.Close()
		deps.reserved = rdb
		ready = append(ready, store.RedisHealth(rdb))
	}

	mdb, err := store.ConnectMongo(ctx, cfg.Store.Mongo, cfg.Store.Retry)
	switch {
	case errors.Is(err, store.ErrNotConfigured):
		log.Info("mongodb not configured, using the built-in country list")
	case err != nil:
		return err
	default:
		defer func() { _ = mdb.Client().Disconnect(context.WithoutCancel(ctx)) }()
		deps.countries = mdb.Collection(cfg.CountriesCollection)
		ready = append(ready, store.MongoHealth(mdb))
	}

	signup := newSignupValidator(deps,
		validator.WithLogger(log),
		validator.WithAsyncTimeout(cfg.Validator.AsyncTimeout),
	)
	log.Info("signup rules ready", logger.RuleCount(signup.Rules()))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(log, signup, accts, ready),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return serve(ctx, srv, cfg, log)
}

func newLogger(cfg appConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "vali-demo"),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			if id := middleware.GetReqID(ctx); id != "" {
				return logger.RequestID(id), true
			}
			return slog.Attr{}, false
		}),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}
