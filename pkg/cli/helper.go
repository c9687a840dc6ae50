package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/cli/config"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/infra"
	"github.com/Cielo24/git-conflict-detector/pkg/usecase"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

// detector bundles the configuration shared by every command that runs conflict scans.
type detector struct {
	settings  config.Settings
	workspace config.Workspace
	githubApp config.GitHubApp
	bigQuery  config.BigQuery
	firestore config.Firestore
	sentry    config.Sentry
}

func (x *detector) Flags() []cli.Flag {
	return slice.Flatten(
		x.settings.Flags(),
		x.workspace.Flags(),
		x.githubApp.Flags(),
		x.bigQuery.Flags(),
		x.firestore.Flags(),
		x.sentry.Flags(),
	)
}

func (x *detector) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Settings", &x.settings),
		slog.Any("Workspace", &x.workspace),
		slog.Any("GitHubApp", x.githubApp),
		slog.Any("BigQuery", &x.bigQuery),
		slog.Any("Firestore", &x.firestore),
		slog.Any("Sentry", &x.sentry),
	)
}

// build configures Sentry, loads settings and wires the use case. queue may be nil for commands
// that never touch the queue.
func (x *detector) build(ctx context.Context, queue interfaces.Queue) (*usecase.UseCase, error) {
	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	settings, err := x.settings.Load()
	if err != nil {
		return nil, err
	}
	logging.From(ctx).Info("settings loaded", slog.Any("settings", settings))

	chat, err := x.settings.NewChat(settings)
	if err != nil {
		return nil, err
	}

	repo, err := x.firestore.NewRepository(ctx)
	if err != nil {
		return nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGit(x.workspace.NewGit()),
		infra.WithChat(chat),
		infra.WithScanRepository(repo),
	}
	if queue != nil {
		infraOptions = append(infraOptions, infra.WithQueue(queue))
	}

	if ghApp, err := x.githubApp.New(); err != nil {
		return nil, err
	} else if ghApp != nil {
		infraOptions = append(infraOptions, infra.WithGitHubApp(ghApp))
	}

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	ucOptions := append(x.workspace.UseCaseOptions(), usecase.WithSettings(settings))
	return usecase.New(infra.New(infraOptions...), ucOptions...), nil
}

func requireFirestore(fs *config.Firestore) error {
	if !fs.Enabled() {
		return goerr.New("scan history requires a Firestore project (--firestore-project-id)")
	}
	return nil
}
