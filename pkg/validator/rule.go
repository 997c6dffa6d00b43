package validator

import (
	"context"

	"github.com/UBF21/Vali-Validation/pkg/async"
)

type failure struct {
	property string
	message  string
}

type ruleKind uint8

const (
	// batchedRule folds every synchronous check declared on one builder.
	batchedRule ruleKind = iota
	// standaloneRule is one asynchronous or dependent check.
	standaloneRule
)

func (k ruleKind) String() string {
	if k == batchedRule {
		return "batched"
	}
	return "standalone"
}

// executor is a registered rule. Exactly one of immediate and suspending is set.
type executor[T any] struct {
	property   string
	kind       ruleKind
	immediate  func(T) ([]failure, error)
	suspending func(context.Context, T) *async.Future[[]failure]
}
