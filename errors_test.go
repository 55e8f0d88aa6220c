package reattempt_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/reattempt"
)

func TestTerminalErrors(t *testing.T) {
	t.Parallel()

	t.Run("retries exhausted exposes the history", func(t *testing.T) {
		t.Parallel()

		e1 := errors.New("first")
		e2 := fmt.Errorf("wrapped: %w", errTest)
		err := &reattempt.RetriesExhaustedError{Errs: []error{e1, e2}}

		assert.Equal(t, "reattempt: retries exhausted after 2 failed attempts", err.Error())
		assert.ErrorIs(t, err, e1)
		assert.ErrorIs(t, err, errTest)
	})

	t.Run("time exhausted exposes the history", func(t *testing.T) {
		t.Parallel()

		err := &reattempt.TimeExhaustedError{Errs: []error{errTest}}

		assert.Equal(t, "reattempt: time budget exhausted after 1 failed attempts", err.Error())
		assert.ErrorIs(t, err, errTest)
	})

	t.Run("unallowed carries a single error", func(t *testing.T) {
		t.Parallel()

		err := &reattempt.UnallowedError{Err: errTest}

		assert.Equal(t, "reattempt: unallowed error: test error", err.Error())
		assert.ErrorIs(t, err, errTest)

		var unallowed *reattempt.UnallowedError
		require.ErrorAs(t, fmt.Errorf("call failed: %w", err), &unallowed)
		assert.Equal(t, errTest, unallowed.Err)
	})
}

func TestStop(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, reattempt.Stop(nil))
	})

	t.Run("preserves message and unwraps", func(t *testing.T) {
		t.Parallel()

		err := reattempt.Stop(errTest)
		assert.EqualError(t, err, "test error")
		assert.ErrorIs(t, err, errTest)
	})
}
