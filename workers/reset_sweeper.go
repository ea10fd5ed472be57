package workers

import (
	"context"
	"time"

	"filmoteca/ledger"

	"github.com/sirupsen/logrus"
)

// StartResetSweeper periodically drops expired reset tokens so the
// ledger does not accumulate stale entries between restarts.
// Stops when ctx is cancelled.
func StartResetSweeper(ctx context.Context, l ledger.Ledger, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := l.Sweep(ctx); err != nil {
					logrus.WithError(err).Warn("reset sweeper: sweep failed")
				}
			}
		}
	}()
}
