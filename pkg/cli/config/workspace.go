package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/infra/git"
	"github.com/Cielo24/git-conflict-detector/pkg/usecase"
)

// Workspace configures the git binary and the working clones it operates on.
type Workspace struct {
	gitPath     string
	timeout     time.Duration
	cacheDir    string
	cloneURL    string
	appCloneURL string
	userName    string
	userEmail   string
}

func (x *Workspace) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "git-path",
			Usage:       "Path to git binary",
			Category:    "Git",
			Value:       "git",
			Sources:     cli.EnvVars("GCD_GIT_PATH"),
			Destination: &x.gitPath,
		},
		&cli.DurationFlag{
			Name:        "git-timeout",
			Usage:       "Timeout of a single git command",
			Category:    "Git",
			Value:       git.DefaultTimeout,
			Sources:     cli.EnvVars("GCD_GIT_TIMEOUT"),
			Destination: &x.timeout,
		},
		&cli.StringFlag{
			Name:        "cache-dir",
			Usage:       "Directory holding one working clone per repository",
			Category:    "Git",
			Value:       usecase.DefaultCacheDir,
			Sources:     cli.EnvVars("GCD_CACHE_DIR"),
			Destination: &x.cacheDir,
		},
		&cli.StringFlag{
			Name:        "clone-url",
			Usage:       "Clone URL template, {owner} and {name} are replaced",
			Category:    "Git",
			Value:       usecase.DefaultCloneURL,
			Sources:     cli.EnvVars("GCD_CLONE_URL"),
			Destination: &x.cloneURL,
		},
		&cli.StringFlag{
			Name:        "app-clone-url",
			Usage:       "Clone URL template used with GitHub App installation tokens",
			Category:    "Git",
			Value:       usecase.DefaultAppCloneURL,
			Sources:     cli.EnvVars("GCD_APP_CLONE_URL"),
			Destination: &x.appCloneURL,
		},
		&cli.StringFlag{
			Name:        "git-user-name",
			Usage:       "Author and committer name used for trial merges",
			Category:    "Git",
			Value:       usecase.DefaultMergeUserName,
			Sources:     cli.EnvVars("GCD_GIT_USER_NAME"),
			Destination: &x.userName,
		},
		&cli.StringFlag{
			Name:        "git-user-email",
			Usage:       "Author and committer email used for trial merges",
			Category:    "Git",
			Value:       usecase.DefaultMergeUserEmail,
			Sources:     cli.EnvVars("GCD_GIT_USER_EMAIL"),
			Destination: &x.userEmail,
		},
	}
}

func (x *Workspace) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("gitPath", x.gitPath),
		slog.Duration("timeout", x.timeout),
		slog.String("cacheDir", x.cacheDir),
		slog.String("cloneURL", x.cloneURL),
		slog.String("appCloneURL", x.appCloneURL),
		slog.String("userName", x.userName),
		slog.String("userEmail", x.userEmail),
	)
}

func (x *Workspace) NewGit() *git.Client {
	return git.New(x.gitPath, git.WithTimeout(x.timeout))
}

// UseCaseOptions returns the options that point the use case at the working clones.
func (x *Workspace) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithCacheDir(x.cacheDir),
		usecase.WithCloneURL(x.cloneURL),
		usecase.WithAppCloneURL(x.appCloneURL),
		usecase.WithMergeIdentity(x.userName, x.userEmail),
	}
}
