package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/infra/queue/gcs"
	"github.com/Cielo24/git-conflict-detector/pkg/infra/queue/local"
)

// Queue selects where push payloads wait for the worker: a local directory, or a Cloud Storage
// bucket when one is given.
type Queue struct {
	dir    string
	bucket string
	prefix string
}

func (x *Queue) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "queue-dir",
			Usage:       "Local queue directory",
			Category:    "Queue",
			Value:       ".queue",
			Sources:     cli.EnvVars("GCD_QUEUE_DIR"),
			Destination: &x.dir,
		},
		&cli.StringFlag{
			Name:        "queue-bucket",
			Usage:       "Cloud Storage bucket for the queue (overrides --queue-dir)",
			Category:    "Queue",
			Sources:     cli.EnvVars("GCD_QUEUE_BUCKET"),
			Destination: &x.bucket,
		},
		&cli.StringFlag{
			Name:        "queue-prefix",
			Usage:       "Object name prefix in the queue bucket",
			Category:    "Queue",
			Value:       "queue/",
			Sources:     cli.EnvVars("GCD_QUEUE_PREFIX"),
			Destination: &x.prefix,
		},
	}
}

func (x *Queue) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", x.dir),
		slog.String("bucket", x.bucket),
		slog.String("prefix", x.prefix),
	)
}

func (x *Queue) New(ctx context.Context) (interfaces.Queue, error) {
	if x.bucket != "" {
		return gcs.New(ctx, x.bucket, x.prefix)
	}
	return local.New(x.dir)
}
