package reattempt

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WithLogger installs hooks that log each retry, recovery and exhaustion
// through logger. A call-level OnRetry, OnSuccess or OnExhausted option
// applied after this one replaces the corresponding logging hook.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.onRetry = func(_ context.Context, attempt int, err error, delay time.Duration) {
			logger.Warn("retrying operation",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err),
			)
		}
		c.onSuccess = func(_ context.Context, attempts int) {
			if attempts > 1 {
				logger.Info("operation recovered",
					zap.Int("attempts", attempts),
				)
			}
		}
		c.onExhausted = func(_ context.Context, attempts int, err error) {
			logger.Error("retry budget exhausted",
				zap.Int("attempts", attempts),
				zap.Error(err),
			)
		}
	}
}
