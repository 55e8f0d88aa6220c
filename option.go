package reattempt

import "time"

// mode selects the stopping policy.
type mode int

const (
	modeAttempts mode = iota
	modeExpiry
)

// config holds all retry configuration.
type config struct {
	// Policy-level options
	mode        mode
	maxAttempts int
	expiry      time.Duration
	backoff     Backoff
	clock       Clock

	// Call-level options
	condition   Condition
	onRetry     OnRetryFunc
	onSuccess   OnSuccessFunc
	onExhausted OnExhaustedFunc
	operation   string
}

// Option configures retry behavior.
type Option func(*config)

// WithMaxAttempts selects the attempt-ceiling stopping policy: at most n
// attempts total. n <= 0 permits no attempts at all. Mutually exclusive
// with WithExpiry; the last mode option applied wins.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		c.mode = modeAttempts
		c.maxAttempts = n
	}
}

// WithExpiry selects the wall-clock stopping policy: a new attempt may
// start only while the elapsed time measured so far is below d. An
// attempt that has started always runs its wait and invocation to
// completion, even past the boundary. d <= 0 permits no attempts at all.
// Mutually exclusive with WithMaxAttempts; the last mode option applied
// wins.
func WithExpiry(d time.Duration) Option {
	return func(c *config) {
		c.mode = modeExpiry
		c.expiry = d
	}
}

// WithBackoff sets the wait-stream source.
func WithBackoff(b Backoff) Option {
	return func(c *config) {
		c.backoff = b
	}
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// If sets the condition that decides whether an error permits another
// attempt. A rejected error stops the loop immediately with an
// UnallowedError.
func If(cond Condition) Option {
	return func(c *config) {
		c.condition = cond
	}
}

// IfNot sets a condition where matching errors are NOT retried.
// This is equivalent to If(Not(cond)).
func IfNot(cond Condition) Option {
	return If(Not(cond))
}

// OnRetry sets a hook that is called before each retry wait.
func OnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// OnSuccess sets a hook that is called when the operation succeeds.
func OnSuccess(fn OnSuccessFunc) Option {
	return func(c *config) {
		c.onSuccess = fn
	}
}

// OnExhausted sets a hook that is called when the stopping policy forbids
// further attempts.
func OnExhausted(fn OnExhaustedFunc) Option {
	return func(c *config) {
		c.onExhausted = fn
	}
}
