package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/errutil"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

// drainQueue runs one pass over the queue. Failures are reported and never stop the caller.
func drainQueue(ctx context.Context, uc interfaces.UseCase) {
	report, err := uc.ProcessQueue(ctx)
	if err != nil {
		errutil.HandleError(ctx, "failed to process queue", err)
		return
	}
	if report.Processed+report.Dropped+report.Retained > 0 {
		logging.From(ctx).Info("queue processed",
			slog.Int("processed", report.Processed),
			slog.Int("dropped", report.Dropped),
			slog.Int("retained", report.Retained),
		)
	}
}

// runWorker drains the queue every interval, and immediately whenever wake fires, until ctx is
// cancelled.
func runWorker(ctx context.Context, uc interfaces.UseCase, interval time.Duration, wake <-chan struct{}) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		drainQueue(ctx, uc)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-wake:
		}
	}
}

// newWakeup returns a notifier that never blocks and coalesces pending signals.
func newWakeup() (chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	return ch, func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
