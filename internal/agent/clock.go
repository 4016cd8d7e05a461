package agent

import (
	"context"
	"time"
)

// bootClock is the production Clock: a monotonic millisecond counter
// starting at zero when the agent boots.
type bootClock struct {
	start time.Time
}

// NewBootClock returns a Clock counting milliseconds from now.
func NewBootClock() Clock {
	return &bootClock{start: time.Now()}
}

func (c *bootClock) NowMillis() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

func (c *bootClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
