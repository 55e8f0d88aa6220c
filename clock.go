package reattempt

import (
	"context"
	"time"
)

// Clock abstracts the loop's two time collaborators: reading the current
// instant (expiry mode) and blocking between attempts. Inject a fake to
// control time in tests.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// systemClock implements Clock using the standard time package.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d or until ctx is done. The loop issues exactly one
// Sleep per attempt, including the mandatory leading zero wait, so a
// non-positive d returns without arming a timer.
func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	}
}
