package git_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/infra/git"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/testutil"
)

func TestRun(t *testing.T) {
	client := git.New(testutil.LookupGitOrSkip(t))
	ctx := context.Background()

	t.Run("returns stdout of successful command", func(t *testing.T) {
		out, err := client.Run(ctx, &interfaces.GitCommand{
			Dir:  t.TempDir(),
			Args: []string{"version"},
		})
		gt.NoError(t, err)
		gt.True(t, strings.HasPrefix(out, "git version"))
	})

	t.Run("returns CommandFailure on non-zero exit", func(t *testing.T) {
		_, err := client.Run(ctx, &interfaces.GitCommand{
			Dir:  t.TempDir(),
			Args: []string{"rev-parse", "--verify", "refs/heads/does-not-exist"},
		})
		gt.Error(t, err)

		var failure *types.CommandFailure
		gt.True(t, errors.As(err, &failure))
		gt.V(t, failure.ExitStatus).NotEqual(0)
		gt.V(t, failure.Command[0]).Equal("rev-parse")
	})

	t.Run("extra environment is passed to git", func(t *testing.T) {
		out, err := client.Run(ctx, &interfaces.GitCommand{
			Dir:  t.TempDir(),
			Args: []string{"config", "--get", "gcd.test"},
			Env:  []string{"GIT_CONFIG_COUNT=1", "GIT_CONFIG_KEY_0=gcd.test", "GIT_CONFIG_VALUE_0=hello"},
		})
		gt.NoError(t, err)
		gt.V(t, strings.TrimSpace(out)).Equal("hello")
	})
}

func TestRunTimeout(t *testing.T) {
	client := git.New(testutil.LookupGitOrSkip(t), git.WithTimeout(time.Nanosecond))
	_, err := client.Run(context.Background(), &interfaces.GitCommand{
		Dir:  t.TempDir(),
		Args: []string{"version"},
	})
	gt.Error(t, err)
}
