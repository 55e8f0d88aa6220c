// Package reattempt is a retry execution engine built around lazy wait
// streams and a pluggable stopping policy.
//
// reattempt provides:
//
//   - Wait Streams: delays are a lazy sequence where each value is derived
//     from the previous one, pulled on demand, one per attempt
//   - Composable Transformers: WithOffset, WithScale, WithCap and
//     WithJitter wrap any backoff, in any order, any number of times
//   - Two Stopping Policies: an attempt ceiling (WithMaxAttempts) or a
//     wall-clock expiry ceiling (WithExpiry)
//   - Typed Terminal Errors: RetriesExhaustedError and TimeExhaustedError
//     carry the full ordered error history; UnallowedError carries the
//     single rejected error
//   - Generic Results: operations return a value, and Result bundles it
//     with the applied waits and the measured elapsed time
//   - Injectable Collaborators: clock, sleep and randomness are swappable
//     for tests and alternate runtimes
//
// # Quick Start
//
// Using the global Do function:
//
//	res := reattempt.Do(ctx, func(ctx context.Context, attempt int) (string, error) {
//	    return client.Fetch(ctx)
//	},
//	    reattempt.WithMaxAttempts(4),
//	    reattempt.WithBackoff(reattempt.Constant(100*time.Millisecond)),
//	)
//	if res.Ok() {
//	    use(res.Value)
//	}
//
// Creating a reusable policy for dependency injection:
//
//	// At wire-up time (e.g., in main or a DI container)
//	policy := reattempt.New(
//	    reattempt.WithMaxAttempts(5),
//	    reattempt.WithBackoff(reattempt.Exponential(100*time.Millisecond, 2)),
//	)
//
//	// At call site
//	res := reattempt.Exec(ctx, policy, fetchUser,
//	    reattempt.If(reattempt.AllowOnly(ErrTransient)),
//	)
//
// Error-only operations can use the thin Run wrapper:
//
//	err := reattempt.Run(ctx, func(ctx context.Context, attempt int) error {
//	    return client.Ping(ctx)
//	})
//
// # Wait Streams
//
// A Backoff derives a Stream, a lazy cursor over raw delays. Generators
// seed the stream and define how each delay follows from the previous
// one:
//
//	reattempt.None()                                // 0, 0, 0, ...
//	reattempt.Constant(100*time.Millisecond)        // 100ms, 100ms, ...
//	reattempt.Linear(100*time.Millisecond, 50*time.Millisecond)
//	                                                // 100ms, 150ms, 200ms, ...
//	reattempt.Exponential(100*time.Millisecond, 2)  // 100ms, 200ms, 400ms, ...
//	reattempt.Custom(time.Second, next)             // next(prev) each pull
//
// Streams are infinite and demand-driven: an exponential or custom
// stream is never materialized, so divergence to very large magnitudes
// is harmless until a value is actually pulled. Raw values may be
// negative; the loop clamps each value to zero only at the point of use,
// so a Custom transition function always sees the unclamped previous
// value.
//
// # Transformers
//
// Transformers wrap a backoff element-wise and compose in caller order.
// Order matters:
//
//	// offset first, then cap: 50->53, 150->100, 450->100
//	reattempt.WithCap(100*time.Millisecond,
//	    reattempt.WithOffset(3*time.Millisecond, b))
//
//	// cap first, then offset: 50->53, 150->103, 450->103
//	reattempt.WithOffset(3*time.Millisecond,
//	    reattempt.WithCap(100*time.Millisecond, b))
//
// WithJitter adds a fresh uniform whole-millisecond value in [1, upper]
// on every pull. WithJitterFrom accepts the randomness source for
// deterministic tests.
//
// # Stopping Policies
//
// Exactly one stopping policy governs an execution; the last mode option
// applied wins, and the default is WithMaxAttempts(3).
//
// WithMaxAttempts(n) permits at most n attempts; n <= 0 permits none.
//
// WithExpiry(d) permits a new attempt only while the measured elapsed
// time is below d. Spillover is permitted: an attempt that was allowed
// to start runs its wait and its invocation to completion even when they
// push the elapsed time past d. d <= 0 permits no attempts.
//
// # Terminal Outcomes
//
// Every execution ends in exactly one of four ways:
//
//   - success: Result.Err is nil and Result.Value holds the value
//   - *RetriesExhaustedError: the attempt ceiling was reached; carries
//     every error seen, in order
//   - *TimeExhaustedError: the expiry ceiling was reached; carries every
//     error seen, in order
//   - *UnallowedError: the condition rejected an error (or the operation
//     returned a Stop-wrapped error); carries only that error
//
// The exhausted errors implement Unwrap() []error, so errors.Is and
// errors.As traverse the whole history:
//
//	res := reattempt.Do(ctx, fn)
//	var exhausted *reattempt.RetriesExhaustedError
//	if errors.As(res.Err, &exhausted) {
//	    log.Printf("gave up after %d failures", len(exhausted.Errs))
//	}
//
// Result.Waits records each wait actually applied; its first element is
// always 0 because the first attempt never waits, regardless of the
// configured stream.
//
// # Conditions
//
// The condition is the single retry/stop decision point for errors:
//
//	reattempt.If(reattempt.AllowOnly(ErrTimeout, ErrUnavailable))
//	reattempt.If(reattempt.Deny(ErrCorrupt))
//	reattempt.IfNot(isPermanent)
//
// Use Stop to bypass the condition from inside the operation:
//
//	func fetchUser(ctx context.Context, attempt int) (*User, error) {
//	    user, err := db.Get(ctx, id)
//	    if errors.Is(err, sql.ErrNoRows) {
//	        return nil, reattempt.Stop(ErrNotFound)
//	    }
//	    return user, err
//	}
//
// # Observability
//
// Lifecycle hooks fire at the loop's decision points:
//
//	reattempt.OnRetry(func(ctx context.Context, attempt int, err error, delay time.Duration) {
//	    log.Printf("attempt %d failed: %v; waiting %v", attempt, err, delay)
//	})
//	reattempt.OnSuccess(func(ctx context.Context, attempts int) { ... })
//	reattempt.OnExhausted(func(ctx context.Context, attempts int, err error) { ... })
//
// WithLogger(logger) installs zap-backed defaults for all three hooks,
// and WithMetrics(operation) records prometheus counters and wait
// histograms labeled by operation.
//
// # Testing
//
// Inject a fake clock to control time without real sleeps:
//
//	type fakeClock struct {
//	    now    time.Time
//	    sleeps []time.Duration
//	}
//
//	func (c *fakeClock) Now() time.Time { return c.now }
//	func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
//	    c.sleeps = append(c.sleeps, d)
//	    c.now = c.now.Add(d)
//	    return ctx.Err()
//	}
//
// Combined with WithJitterFrom and a fixed source, executions are fully
// deterministic.
package reattempt
