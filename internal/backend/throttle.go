package backend

import (
	"context"
	"time"
)

// throttle spaces markup reads so a burst of editor writes is not reparsed on
// every tick. It is owned by the poll goroutine and is not safe for shared use.
type throttle struct {
	interval time.Duration
	last     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval}
}

// wait blocks until interval has passed since the previous successful wait or
// until ctx is done. It reports whether the caller may proceed.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	if delay := time.Until(t.last.Add(t.interval)); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	t.last = time.Now()
	return ctx.Err() == nil
}
