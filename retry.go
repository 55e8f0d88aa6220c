package reattempt

import (
	"context"
	"errors"
	"time"
)

// OnRetryFunc is called before each retry wait, with the wait about to be
// applied and the error that triggered it. attempt is the 0-based index
// of the attempt about to start.
type OnRetryFunc func(ctx context.Context, attempt int, err error, delay time.Duration)

// OnSuccessFunc is called when the operation succeeds.
type OnSuccessFunc func(ctx context.Context, attempts int)

// OnExhaustedFunc is called when the stopping policy forbids further
// attempts. err is the last error encountered, or nil when no attempt
// was permitted at all.
type OnExhaustedFunc func(ctx context.Context, attempts int, err error)

// Policy defines retry behavior. Safe for concurrent use: every
// execution derives its own wait stream and owns its own accumulators.
type Policy struct {
	mode        mode
	maxAttempts int
	expiry      time.Duration
	backoff     Backoff
	clock       Clock
}

// Default values.
const (
	DefaultMaxAttempts = 3
)

// package-level defaults to avoid allocation
var (
	defaultBackoff = Exponential(100*time.Millisecond, 2)
	defaultClock   = systemClock{}
)

func defaultConfig() config {
	return config{
		mode:        modeAttempts,
		maxAttempts: DefaultMaxAttempts,
		backoff:     defaultBackoff,
		clock:       defaultClock,
		condition:   AllowAll(),
	}
}

// New creates a Policy with the given options.
func New(opts ...Option) *Policy {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Policy{
		mode:        cfg.mode,
		maxAttempts: cfg.maxAttempts,
		expiry:      cfg.expiry,
		backoff:     cfg.backoff,
		clock:       cfg.clock,
	}
}

// Never returns a policy that does not retry.
func Never() *Policy {
	return New(WithMaxAttempts(1))
}

// Default returns a policy with sensible defaults.
func Default() *Policy {
	return New(
		WithMaxAttempts(DefaultMaxAttempts),
		WithBackoff(WithJitter(20*time.Millisecond, WithCap(10*time.Second, Exponential(100*time.Millisecond, 2)))),
	)
}

func (p *Policy) config() config {
	return config{
		mode:        p.mode,
		maxAttempts: p.maxAttempts,
		expiry:      p.expiry,
		backoff:     p.backoff,
		clock:       p.clock,
		condition:   AllowAll(),
	}
}

// Do executes fn with retry using the default policy plus opts.
func Do[T any](ctx context.Context, fn Func[T], opts ...Option) Result[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return execute(ctx, fn, cfg)
}

// Exec executes fn using p's configuration plus call-level opts. It is a
// package-level function rather than a method because Go methods cannot
// take type parameters.
func Exec[T any](ctx context.Context, p *Policy, fn Func[T], opts ...Option) Result[T] {
	cfg := p.config()
	for _, opt := range opts {
		opt(&cfg)
	}
	return execute(ctx, fn, cfg)
}

// Run executes an error-only operation and returns just the terminal
// error.
func Run(ctx context.Context, fn func(ctx context.Context, attempt int) error, opts ...Option) error {
	res := Do(ctx, func(ctx context.Context, attempt int) (struct{}, error) {
		return struct{}{}, fn(ctx, attempt)
	}, opts...)
	return res.Err
}

func execute[T any](ctx context.Context, fn Func[T], cfg config) Result[T] {
	var res Result[T]
	var errs []error

	// The first attempt never waits: a zero is prepended to the caller's
	// stream. Clamping happens before the prepend so the leading zero
	// and every later element are non-negative at the point of use.
	waits := cfg.backoff.Waits().clampZero().prepend(0)
	if cfg.mode == modeAttempts {
		waits = waits.take(cfg.maxAttempts)
	}

	var start time.Time
	if cfg.mode == modeExpiry {
		start = cfg.clock.Now()
	}

	for attempt := 0; ; attempt++ {
		if !permitted(&cfg, attempt, res.Elapsed) {
			return exhausted(ctx, &cfg, res, errs)
		}
		w, ok := waits.Next()
		if !ok {
			return exhausted(ctx, &cfg, res, errs)
		}

		if attempt > 0 && cfg.onRetry != nil {
			cfg.onRetry(ctx, attempt, errs[len(errs)-1], w)
		}

		sleepErr := cfg.clock.Sleep(ctx, w)
		res.Waits = append(res.Waits, w)
		recordWait(cfg.operation, w)
		if cfg.mode == modeExpiry {
			res.Elapsed = cfg.clock.Now().Sub(start)
		}
		if sleepErr != nil {
			// Cancelled mid-wait; the attempt never runs.
			errs = append(errs, sleepErr)
			return exhausted(ctx, &cfg, res, errs)
		}

		res.Attempts++
		recordAttempt(cfg.operation)
		v, err := fn(ctx, attempt)
		if err == nil {
			res.Value = v
			if cfg.onSuccess != nil {
				cfg.onSuccess(ctx, res.Attempts)
			}
			recordOutcome(cfg.operation, outcomeSuccess)
			return res
		}
		errs = append(errs, err)

		// Terminal errors bypass the condition.
		var stopped *stopError
		if errors.As(err, &stopped) {
			res.Err = &UnallowedError{Err: stopped.Unwrap()}
			recordOutcome(cfg.operation, outcomeUnallowed)
			return res
		}

		if cfg.condition != nil && !cfg.condition(err) {
			res.Err = &UnallowedError{Err: err}
			recordOutcome(cfg.operation, outcomeUnallowed)
			return res
		}
	}
}

// permitted reports whether the stopping policy allows attempt to start.
// elapsed is the duration measured as of the end of the previous
// attempt's wait; it is zero before the first attempt.
func permitted(cfg *config, attempt int, elapsed time.Duration) bool {
	switch cfg.mode {
	case modeExpiry:
		return cfg.expiry > 0 && elapsed < cfg.expiry
	default:
		return attempt < cfg.maxAttempts
	}
}

func exhausted[T any](ctx context.Context, cfg *config, res Result[T], errs []error) Result[T] {
	switch cfg.mode {
	case modeExpiry:
		res.Err = &TimeExhaustedError{Errs: errs}
		recordOutcome(cfg.operation, outcomeTimeExhausted)
	default:
		res.Err = &RetriesExhaustedError{Errs: errs}
		recordOutcome(cfg.operation, outcomeRetriesExhausted)
	}
	if cfg.onExhausted != nil {
		var last error
		if len(errs) > 0 {
			last = errs[len(errs)-1]
		}
		cfg.onExhausted(ctx, res.Attempts, last)
	}
	return res
}
