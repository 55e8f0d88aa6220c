package reattempt

import "fmt"

// RetriesExhaustedError is returned when the attempt ceiling was reached
// before the operation succeeded. Errs holds every error encountered, in
// attempt order.
type RetriesExhaustedError struct {
	Errs []error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("reattempt: retries exhausted after %d failed attempts", len(e.Errs))
}

// Unwrap exposes the full error history to errors.Is and errors.As.
func (e *RetriesExhaustedError) Unwrap() []error {
	return e.Errs
}

// TimeExhaustedError is returned when the expiry ceiling was reached
// before the operation succeeded. Errs holds every error encountered, in
// attempt order.
type TimeExhaustedError struct {
	Errs []error
}

func (e *TimeExhaustedError) Error() string {
	return fmt.Sprintf("reattempt: time budget exhausted after %d failed attempts", len(e.Errs))
}

// Unwrap exposes the full error history to errors.Is and errors.As.
func (e *TimeExhaustedError) Unwrap() []error {
	return e.Errs
}

// UnallowedError is returned when the configured condition rejected an
// error, or the operation returned a Stop-wrapped error. It carries only
// the rejected error, not the attempt history.
type UnallowedError struct {
	Err error
}

func (e *UnallowedError) Error() string {
	return "reattempt: unallowed error: " + e.Err.Error()
}

func (e *UnallowedError) Unwrap() error {
	return e.Err
}

// Stop wraps an error to signal that it must not be retried, regardless
// of the configured condition. The loop returns it immediately as an
// UnallowedError carrying the unwrapped error.
func Stop(err error) error {
	if err == nil {
		return nil
	}
	return &stopError{err: err}
}

// stopError wraps an error that should not be retried.
type stopError struct {
	err error
}

func (e *stopError) Error() string {
	return e.err.Error()
}

func (e *stopError) Unwrap() error {
	return e.err
}
