package reattempt

import (
	"math/rand/v2"
	"time"
)

// mapped applies fn element-wise to every stream derived from b.
func mapped(b Backoff, fn func(time.Duration) time.Duration) Backoff {
	return BackoffFunc(func() Stream {
		s := b.Waits()
		return func() (time.Duration, bool) {
			d, ok := s()
			if !ok {
				return 0, false
			}
			return fn(d), true
		}
	})
}

// WithOffset wraps a backoff and adds a constant to every delay.
func WithOffset(delta time.Duration, b Backoff) Backoff {
	return mapped(b, func(d time.Duration) time.Duration {
		return d + delta
	})
}

// WithScale wraps a backoff and multiplies every delay by factor.
func WithScale(factor int64, b Backoff) Backoff {
	return mapped(b, func(d time.Duration) time.Duration {
		return d * time.Duration(factor)
	})
}

// WithCap wraps a backoff and caps every delay at max.
//
// Wrappers apply in composition order and order matters:
// WithCap(max, WithOffset(delta, b)) caps the offset delay, while
// WithOffset(delta, WithCap(max, b)) offsets the capped delay.
func WithCap(max time.Duration, b Backoff) Backoff {
	return mapped(b, func(d time.Duration) time.Duration {
		if d > max {
			return max
		}
		return d
	})
}

// WithJitter wraps a backoff and adds a uniformly random whole number of
// milliseconds in [1, upper] to every delay. A fresh value is drawn on
// every pull; jittered streams are never memoized. upper values below one
// millisecond disable the jitter.
func WithJitter(upper time.Duration, b Backoff) Backoff {
	return WithJitterFrom(upper, b, rand.Int64N)
}

// WithJitterFrom is WithJitter with an injected randomness source. intn
// must return a non-negative integer below its argument; it is called
// once per pull.
func WithJitterFrom(upper time.Duration, b Backoff, intn func(int64) int64) Backoff {
	bound := int64(upper / time.Millisecond)
	return mapped(b, func(d time.Duration) time.Duration {
		if bound < 1 {
			return d
		}
		return d + time.Duration(intn(bound)+1)*time.Millisecond
	})
}
