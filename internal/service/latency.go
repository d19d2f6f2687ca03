package service

import (
	"context"
	"time"
)

// simulate blocks for the configured mock-backend delay. The delay is
// bounded and cancellable; with a zero duration (the test default) it
// returns immediately.
func simulate(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
