// Package logger builds *slog.Logger values with functional options and
// provides attribute constructors for the keys used across this module.
//
// New selects a text or JSON handler and applies static attributes. When
// context extractors are registered, the handler runs each ContextExtractor
// on every record. That is how request scoped values such as a
// request id reach log lines written deep inside the validator.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "signup-api"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	v := validator.New[Signup](validator.WithLogger(log))
//
// # Attributes
//
// The validator logs with ValidatorType, Property, RuleKind, RulePosition,
// RuleCount, ErrorCount and Valid. Error and Errors only produce an attribute
// for non-nil errors, so they can be passed unconditionally:
//
//	log.Info("request finished", logger.Error(err))
//
// # Configuration
//
//   - WithEnvironment: per-environment defaults for level and format.
//   - WithFormat / WithLevel: explicit overrides; ParseLevel reads level names.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes pulled from context.
package logger
