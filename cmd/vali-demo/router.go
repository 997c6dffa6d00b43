package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/UBF21/Vali-Validation/pkg/httpvalidate"
	"github.com/UBF21/Vali-Validation/pkg/logger"
	"github.com/UBF21/Vali-Validation/pkg/store"
	"github.com/UBF21/Vali-Validation/pkg/validator"
)

func newRouter(log *slog.Logger, signup *validator.Validator[signupRequest], accts accounts, ready []store.Check) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Get("/readyz", readiness(log, ready))

	r.Post("/signup", httpvalidate.Handle(signup, accts.create,
		httpvalidate.WithLogger(log),
		httpvalidate.WithSuccessStatus(http.StatusCreated),
	))
	return r
}

// readiness answers READY when every check passes and NOT_READY otherwise.
func readiness(log *slog.Logger, checks []store.Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
