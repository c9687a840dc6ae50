package git

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

const DefaultTimeout = 10 * time.Minute

type Client struct {
	path    string
	timeout time.Duration
}

var _ interfaces.Git = (*Client)(nil)

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.timeout = d
	}
}

func New(path string, options ...Option) *Client {
	client := &Client{
		path:    path,
		timeout: DefaultTimeout,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// Run executes git with cmd.Args in cmd.Dir and returns stdout. Output is not interpreted here.
func (x *Client) Run(ctx context.Context, cmd *interfaces.GitCommand) (string, error) {
	logging.From(ctx).Info("Cmd: git "+strings.Join(cmd.Args, " "), slog.String("dir", cmd.Dir))

	if x.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	// #nosec G204 arguments are passed as a list, never through a shell
	c := exec.CommandContext(ctx, x.path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	c.Env = append(c.Env, cmd.Env...)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		failure := &types.CommandFailure{
			Command:    cmd.Args,
			ExitStatus: -1,
			Stdout:     stdout.String(),
			Stderr:     stderr.String(),
			Err:        err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			failure.ExitStatus = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", goerr.Wrap(failure, "git command interrupted", goerr.V("cause", ctxErr.Error()), goerr.V("dir", cmd.Dir))
		}
		return "", failure
	}

	return stdout.String(), nil
}
