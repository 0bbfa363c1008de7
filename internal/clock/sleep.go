// Package clock paces the mining pulse.
package clock

import (
	"context"
	"time"
)

// SleepUntil waits until deadline or returns early if the context is canceled.
// A deadline already in the past only reports the context state.
func SleepUntil(ctx context.Context, deadline time.Time) error {
	wait := time.Until(deadline)
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NextPulse returns the first tick of the grid anchored at origin with the
// given interval that is strictly after now. Ticks missed while a pulse ran
// long are skipped, not replayed.
func NextPulse(origin, now time.Time, interval time.Duration) time.Time {
	if interval <= 0 || now.Before(origin) {
		return origin
	}
	ticks := now.Sub(origin)/interval + 1
	return origin.Add(ticks * interval)
}
