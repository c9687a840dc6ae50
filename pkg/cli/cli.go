package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/cli/config"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

// Run parses argv and dispatches to one of serve, process, scan and history. Logging is
// configured before any subcommand runs so flag errors of subcommands are logged in the
// requested format.
func (x *CLI) Run(argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:  "git-conflict-detector",
		Usage: "Detect merge conflicts between a pushed branch and every other branch",
		Flags: logCfg.Flags(),
		Commands: []*cli.Command{
			serveCommand(),
			processCommand(),
			scanCommand(),
			historyCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logCfg.Configure(); err != nil {
				return ctx, err
			}
			logging.Default().Debug("logging configured", "logging", &logCfg)
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
