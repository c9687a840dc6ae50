package errutil

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

// HandleError reports err to Sentry and logs it. Values attached with goerr and the details of a
// failed git command become Sentry extras.
func HandleError(ctx context.Context, msg string, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}

		var failure *types.CommandFailure
		if errors.As(err, &failure) {
			if len(failure.Command) > 0 {
				scope.SetTag("git.subcommand", failure.Command[0])
			}
			scope.SetExtra("git.command", strings.Join(failure.Command, " "))
			scope.SetExtra("git.exit_status", failure.ExitStatus)
			scope.SetExtra("git.stderr", failure.Stderr)
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
