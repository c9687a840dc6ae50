package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/cli/config"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/infra/queue/local"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

func runFlags(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(t.Context(), append([]string{"test"}, args...)))
}

func TestQueueLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "queue")

	var queue config.Queue
	runFlags(t, queue.Flags(), "--queue-dir", dir)

	q := gt.R1(queue.New(t.Context())).NoError(t)
	_, ok := q.(*local.Queue)
	gt.True(t, ok)

	st := gt.R1(os.Stat(dir)).NoError(t)
	gt.True(t, st.IsDir())
}

func TestWorkspaceDefaults(t *testing.T) {
	var ws config.Workspace
	runFlags(t, ws.Flags())

	gt.A(t, ws.UseCaseOptions()).Length(4)
	gt.True(t, ws.NewGit() != nil)
}

func TestGitHubAppDisabled(t *testing.T) {
	var app config.GitHubApp
	runFlags(t, app.Flags(), "--github-webhook-secret", "s3cr3t")

	gt.False(t, app.Enabled())
	client := gt.R1(app.New()).NoError(t)
	gt.True(t, client == nil)
	gt.V(t, string(app.Secret())).Equal("s3cr3t")
}

func TestBigQueryDisabled(t *testing.T) {
	var bq config.BigQuery
	runFlags(t, bq.Flags())

	client := gt.R1(bq.NewClient(t.Context())).NoError(t)
	gt.True(t, client == nil)
}

func TestBigQueryRequiresDataset(t *testing.T) {
	var bq config.BigQuery
	runFlags(t, bq.Flags(), "--bigquery-project-id", "my-project")

	_, err := bq.NewClient(t.Context())
	gt.Error(t, err)
}

func TestFirestoreFallsBackToMemory(t *testing.T) {
	var fs config.Firestore
	runFlags(t, fs.Flags())

	gt.False(t, fs.Enabled())
	repo := gt.R1(fs.NewRepository(t.Context())).NoError(t)
	gt.True(t, repo != nil)
}

func TestLogging(t *testing.T) {
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure("text", "info", "stdout"))
	})

	t.Run("defaults configure", func(t *testing.T) {
		var cfg config.Logging
		runFlags(t, cfg.Flags())
		gt.NoError(t, cfg.Configure())
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		var cfg config.Logging
		runFlags(t, cfg.Flags(), "--log-level", "verbose")
		gt.True(t, errors.Is(cfg.Configure(), types.ErrInvalidOption))
	})
}
