package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/infra/ghapp"
)

// GitHubApp holds the credentials of an optional GitHub App. When set, private repositories of
// installations are cloned over HTTPS with installation tokens.
type GitHubApp struct {
	id         types.GitHubAppID
	secret     types.GitHubWebhookSecret `masq:"secret"`
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("GCD_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("GCD_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret, signatures are not checked when empty",
			Category:    "GitHub App",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("GCD_GITHUB_WEBHOOK_SECRET"),
		},
	}
}

func (x GitHubApp) Enabled() bool {
	return x.id != 0 || x.privateKey != ""
}

// New returns nil when no app is configured.
func (x GitHubApp) New() (*ghapp.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return ghapp.New(x.id, x.privateKey)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("Secret.len", len(x.secret)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}

func (x GitHubApp) Secret() types.GitHubWebhookSecret {
	return x.secret
}
