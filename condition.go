package reattempt

import "errors"

// Condition decides whether an error is allowed to trigger another
// attempt. Returning false stops the retry loop immediately.
type Condition func(error) bool

// AllowAll allows every error. This is the default condition.
func AllowAll() Condition {
	return func(error) bool {
		return true
	}
}

// AllowOnly allows only errors matching one of targets per errors.Is;
// everything else stops the loop.
func AllowOnly(targets ...error) Condition {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// Deny rejects errors matching one of targets and allows the rest.
func Deny(targets ...error) Condition {
	return Not(AllowOnly(targets...))
}

// Not inverts a condition.
func Not(cond Condition) Condition {
	return func(err error) bool {
		return !cond(err)
	}
}
