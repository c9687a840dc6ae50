package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Cielo24/git-conflict-detector/pkg/cli/config"
	"github.com/Cielo24/git-conflict-detector/pkg/controller/server"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		addr            string
		processInterval time.Duration

		det   detector
		queue config.Queue
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("GCD_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "process-interval",
			Usage:       "Run the queue worker in this process with the given polling interval (0 disables)",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("GCD_PROCESS_INTERVAL"),
			Destination: &processInterval,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Receive GitHub push webhooks and queue them for scanning",
		Flags: slice.Flatten(
			serveFlags,
			queue.Flags(),
			det.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("ProcessInterval", processInterval),
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

			wake, notify := newWakeup()
			serverOptions := []server.Option{
				server.WithGitHubSecret(det.githubApp.Secret()),
			}
			if processInterval > 0 {
				serverOptions = append(serverOptions, server.WithQueueNotifier(notify))
			}
			s := server.New(uc, serverOptions...)

			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to listen and serve")
				}
				return nil
			})

			if processInterval > 0 {
				eg.Go(func() error {
					return runWorker(logging.With(ctx, logging.Default()), uc, processInterval, wake)
				})
			}

			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("shutting down server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
				return nil
			})

			return eg.Wait()
		},
	}
}
