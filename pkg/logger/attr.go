package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ValidatorType records the validated Go type under "validator.type".
func ValidatorType(name string) slog.Attr {
	return slog.String("validator.type", name)
}

// Property records a property name under "property".
func Property(name string) slog.Attr {
	return slog.String("property", name)
}

// RuleKind records whether a rule is batched or standalone under "rule.kind".
func RuleKind(kind string) slog.Attr {
	return slog.String("rule.kind", kind)
}

// RulePosition records a rule's registration index under "rule.position".
func RulePosition(i int) slog.Attr {
	return slog.Int("rule.position", i)
}

func RuleCount(n int) slog.Attr {
	return slog.Int("rules", n)
}

// ErrorCount records the number of failure messages under "error_count".
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// RequestID records the request identifier under "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}
