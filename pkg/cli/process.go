package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/cli/config"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

func processCommand() *cli.Command {
	var (
		interval time.Duration

		det   detector
		queue config.Queue
	)
	processFlags := []cli.Flag{
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Keep polling the queue with this interval (0 drains the queue once and exits)",
			Sources:     cli.EnvVars("GCD_PROCESS_INTERVAL"),
			Destination: &interval,
		},
	}

	return &cli.Command{
		Name:    "process",
		Aliases: []string{"p"},
		Usage:   "Scan queued push records for branch conflicts",
		Flags: slice.Flatten(
			processFlags,
			queue.Flags(),
			det.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting process",
				slog.Any("Interval", interval),
				slog.Any("Queue", &queue),
				slog.Any("Detector", &det),
			)

			q, err := queue.New(ctx)
			if err != nil {
				return err
			}
			uc, err := det.build(ctx, q)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = logging.With(ctx, logging.Default())

			if interval <= 0 {
				report, err := uc.ProcessQueue(ctx)
				if err != nil {
					return err
				}
				logging.Default().Info("queue drained",
					slog.Int("processed", report.Processed),
					slog.Int("dropped", report.Dropped),
					slog.Int("retained", report.Retained),
				)
				return nil
			}

			return runWorker(ctx, uc, interval, nil)
		},
	}
}
