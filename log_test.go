package reattempt_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bjaus/reattempt"
)

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("logs each retry and the exhaustion", func(t *testing.T) {
		t.Parallel()

		core, logs := observer.New(zap.InfoLevel)
		logger := zap.New(core)

		reattempt.Run(context.Background(), func(ctx context.Context, attempt int) error {
			return errTest
		},
			reattempt.WithMaxAttempts(3),
			reattempt.WithBackoff(reattempt.Constant(time.Millisecond)),
			reattempt.WithClock(newFakeClock()),
			reattempt.WithLogger(logger),
		)

		warns := logs.FilterMessage("retrying operation").All()
		require.Len(t, warns, 2)
		assert.Equal(t, zap.WarnLevel, warns[0].Level)
		assert.Equal(t, int64(1), warns[0].ContextMap()["attempt"])

		errs := logs.FilterMessage("retry budget exhausted").All()
		require.Len(t, errs, 1)
		assert.Equal(t, zap.ErrorLevel, errs[0].Level)
		assert.Equal(t, int64(3), errs[0].ContextMap()["attempts"])
	})

	t.Run("logs recovery only after a retry", func(t *testing.T) {
		t.Parallel()

		core, logs := observer.New(zap.InfoLevel)
		logger := zap.New(core)

		err := reattempt.Run(context.Background(), func(ctx context.Context, attempt int) error {
			if attempt == 0 {
				return errTest
			}
			return nil
		},
			reattempt.WithClock(newFakeClock()),
			reattempt.WithLogger(logger),
		)

		require.NoError(t, err)
		assert.Len(t, logs.FilterMessage("operation recovered").All(), 1)
	})

	t.Run("first-attempt success logs nothing", func(t *testing.T) {
		t.Parallel()

		core, logs := observer.New(zap.InfoLevel)
		logger := zap.New(core)

		err := reattempt.Run(context.Background(), func(ctx context.Context, attempt int) error {
			return nil
		},
			reattempt.WithClock(newFakeClock()),
			reattempt.WithLogger(logger),
		)

		require.NoError(t, err)
		assert.Zero(t, logs.Len())
	})
}
