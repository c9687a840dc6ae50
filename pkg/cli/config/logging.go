package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

// Logging configures the process wide logger.
type Logging struct {
	level  string
	format string
	output string
}

func (x *Logging) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [trace|debug|info|warn|error]",
			Aliases:     []string{"l"},
			Category:    "Logging",
			Sources:     cli.EnvVars("GCD_LOG_LEVEL"),
			Destination: &x.level,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Category:    "Logging",
			Sources:     cli.EnvVars("GCD_LOG_FORMAT"),
			Destination: &x.format,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Category:    "Logging",
			Sources:     cli.EnvVars("GCD_LOG_OUTPUT"),
			Destination: &x.output,
			Value:       "-",
		},
	}
}

func (x *Logging) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}

// Configure replaces the default logger. Git output is only visible at trace level.
func (x *Logging) Configure() error {
	return logging.Configure(x.format, x.level, x.output)
}
