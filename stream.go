package reattempt

import (
	"math"
	"time"
)

// Stream is a lazy sequence of wait durations consumed one per attempt.
// Each call to Next advances the cursor; a Stream cannot be rewound. To
// start over, derive a fresh Stream from its Backoff.
//
// Raw values flowing through a Stream may be negative or arbitrarily
// large. The execution loop clamps each value to zero at the point of
// use, never earlier, so a Custom transition function always observes
// the unclamped previous value.
type Stream func() (time.Duration, bool)

// Next pulls the next delay from the stream. ok is false once a bounded
// stream is exhausted.
func (s Stream) Next() (time.Duration, bool) {
	return s()
}

// prepend yields d before every element of s.
func (s Stream) prepend(d time.Duration) Stream {
	done := false
	return func() (time.Duration, bool) {
		if !done {
			done = true
			return d, true
		}
		return s()
	}
}

// clampZero yields s with every element raised to at least zero.
func (s Stream) clampZero() Stream {
	return func() (time.Duration, bool) {
		d, ok := s()
		if d < 0 {
			d = 0
		}
		return d, ok
	}
}

// take bounds s to at most n elements.
func (s Stream) take(n int) Stream {
	return func() (time.Duration, bool) {
		if n <= 0 {
			return 0, false
		}
		n--
		return s()
	}
}

// Backoff derives the wait stream consumed by the retry loop. Every call
// to Waits returns an independent cursor, so one Backoff can back any
// number of concurrent executions.
type Backoff interface {
	Waits() Stream
}

// BackoffFunc is an adapter that allows a function to be used as a Backoff.
type BackoffFunc func() Stream

// Waits implements Backoff.
func (f BackoffFunc) Waits() Stream {
	return f()
}

// None returns a backoff that never waits.
func None() Backoff {
	return Constant(0)
}

// Constant returns a backoff that always waits the same duration.
func Constant(d time.Duration) Backoff {
	return BackoffFunc(func() Stream {
		return func() (time.Duration, bool) {
			return d, true
		}
	})
}

// Linear returns a backoff that grows by step with each attempt.
// initial, initial+step, initial+2*step, ...
func Linear(initial, step time.Duration) Backoff {
	return Custom(initial, func(prev time.Duration) time.Duration {
		return prev + step
	})
}

// Exponential returns a backoff that multiplies by factor with each attempt.
// initial, initial*factor, initial*factor^2, ...
func Exponential(initial time.Duration, factor int64) Backoff {
	return Custom(initial, func(prev time.Duration) time.Duration {
		next := prev * time.Duration(factor)
		// Prevent overflow
		if factor != 0 && prev != 0 && next/time.Duration(factor) != prev {
			if (prev < 0) != (factor < 0) {
				return time.Duration(math.MinInt64)
			}
			return time.Duration(math.MaxInt64)
		}
		return next
	})
}

// Custom returns a backoff where each delay after the first is derived
// from the previous one by next. The value passed to next is never
// clamped; a transition function that wants clamped feedback must clamp
// internally.
func Custom(initial time.Duration, next func(prev time.Duration) time.Duration) Backoff {
	return BackoffFunc(func() Stream {
		cur := initial
		first := true
		return func() (time.Duration, bool) {
			if first {
				first = false
				return cur, true
			}
			cur = next(cur)
			return cur, true
		}
	})
}
