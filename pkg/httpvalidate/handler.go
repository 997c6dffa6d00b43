package httpvalidate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/UBF21/Vali-Validation/pkg/logger"
	"github.com/UBF21/Vali-Validation/pkg/validator"
)

// HandlerFunc handles a decoded and validated request. The returned value is
// written as the "data" member of the response. Returning an invalid
// *validator.Result (directly or wrapped) renders it as a validation failure,
// which lets handlers report checks that can only run after validation, such
// as a unique constraint violation on insert.
type HandlerFunc[T any] func(ctx context.Context, req T) (any, error)

// Option configures Handle.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	maxBodyBytes  int64
	successStatus int
}

// WithLogger sets the logger for decode and evaluation failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxBodyBytes limits the request body size. Zero disables the limit.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) { o.maxBodyBytes = max(n, 0) }
}

// WithSuccessStatus sets the status written when fn succeeds, 200 by default.
func WithSuccessStatus(status int) Option {
	return func(o *options) { o.successStatus = status }
}

// Handle decodes the request body into T, validates it with v and calls fn
// with the valid value.
//
// Responses:
//   - 400 bad_request for malformed bodies, 413 when the body is too large and
//     415 for a missing or unsupported Content-Type
//   - 422 validation_error with the ordered report under error.details
//   - 500 internal_error when a rule or fn fails to run
//   - 503 request_canceled when the request context ends mid validation
//
// Example:
//
//	r.Post("/signup", httpvalidate.Handle(signupValidator,
//		func(ctx context.Context, req SignupRequest) (any, error) {
//			return createAccount(ctx, req)
//		},
//		httpvalidate.WithSuccessStatus(http.StatusCreated),
//	))
func Handle[T any](v *validator.Validator[T], fn HandlerFunc[T], opts ...Option) http.HandlerFunc {
	o := &options{
		logger:        slog.New(slog.DiscardHandler),
		maxBodyBytes:  1 << 20,
		successStatus: http.StatusOK,
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req T
		if err := decode(r, &req, o.maxBodyBytes); err != nil {
			o.logger.DebugContext(ctx, "request body rejected", logger.Error(err))
			status, code := decodeStatus(err)
			write(ctx, o.logger, w, status, errorResponse(code, err.Error()))
			return
		}

		res, err := v.ValidateContext(ctx, req)
		switch {
		case err != nil && ctx.Err() != nil:
			o.logger.DebugContext(ctx, "validation interrupted", logger.Error(err))
			write(ctx, o.logger, w, http.StatusServiceUnavailable, errorResponse(CodeCanceled, "The request was canceled."))
			return
		case err != nil:
			o.logger.ErrorContext(ctx, "validation could not run", logger.Error(err))
			write(ctx, o.logger, w, http.StatusInternalServerError, errorResponse(CodeInternal, http.StatusText(http.StatusInternalServerError)))
			return
		case !res.IsValid():
			write(ctx, o.logger, w, http.StatusUnprocessableEntity, ValidationFailed(res))
			return
		}

		data, err := fn(ctx, req)
		if err != nil {
			var invalid *validator.Result
			if errors.As(err, &invalid) && !invalid.IsValid() {
				write(ctx, o.logger, w, http.StatusUnprocessableEntity, ValidationFailed(invalid))
				return
			}
			o.logger.ErrorContext(ctx, "handler failed", logger.Error(err))
			write(ctx, o.logger, w, http.StatusInternalServerError, errorResponse(CodeInternal, http.StatusText(http.StatusInternalServerError)))
			return
		}

		write(ctx, o.logger, w, o.successStatus, Response{Data: data})
	}
}

func decodeStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, CodeUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, CodeRequestTooLarge
	default:
		return http.StatusBadRequest, CodeBadRequest
	}
}

func write(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, body Response) {
	if err := WriteJSON(w, status, body); err != nil {
		log.ErrorContext(ctx, "failed to write response", logger.Error(err))
	}
}
