package reattempt

import (
	"context"
	"time"
)

// Func is the function signature for retryable operations. attempt is
// 0-based and increments with each invocation.
type Func[T any] func(ctx context.Context, attempt int) (T, error)

// Result is the terminal outcome of one execution.
type Result[T any] struct {
	// Value is the operation's success value. Meaningful only when Err
	// is nil.
	Value T

	// Err is nil on success; otherwise exactly one of
	// *RetriesExhaustedError, *TimeExhaustedError or *UnallowedError.
	Err error

	// Waits lists every delay actually applied, in attempt order. Its
	// first element is always 0 when at least one attempt ran, and no
	// element is ever negative.
	Waits []time.Duration

	// Elapsed is the total measured duration. It is tracked only under
	// WithExpiry; in attempts mode it is zero.
	Elapsed time.Duration

	// Attempts is the number of times the operation was invoked.
	Attempts int
}

// Ok reports whether the execution succeeded.
func (r Result[T]) Ok() bool {
	return r.Err == nil
}
