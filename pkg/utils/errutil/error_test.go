package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := errors.New("test error")

		// Should not panic
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle wrapped git failure", func(t *testing.T) {
		failure := &types.CommandFailure{
			Command:    []string{"fetch", "--all", "--prune"},
			ExitStatus: 128,
			Stderr:     "fatal: could not read from remote repository",
		}
		err := goerr.Wrap(failure, "failed to refresh", goerr.V("repo", "Cielo24/web"))

		errutil.HandleError(context.Background(), "test message", err)
	})

	t.Run("handle git failure without command", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", &types.CommandFailure{ExitStatus: -1})
	})

	t.Run("handle nil error", func(t *testing.T) {
		ctx := context.Background()

		// Should not panic
		errutil.HandleError(ctx, "test message", nil)
	})
}
