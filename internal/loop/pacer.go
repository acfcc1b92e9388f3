package loop

import (
	"context"
	"time"
)

// Pacer waits between frames.
type Pacer interface {
	// Pace blocks for d, or until ctx is done, in which case it returns
	// ctx.Err().
	Pace(ctx context.Context, d time.Duration) error
}

// SleepPacer paces with the wall clock.
type SleepPacer struct{}

// Pace implements Pacer.
func (SleepPacer) Pace(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
