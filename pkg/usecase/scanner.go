package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

// conflictMarkers are what git merge prints when it stops on conflicting content.
var conflictMarkers = []string{
	"CONFLICT",
	"Automatic merge failed",
}

// scanCandidates checks each candidate in order by merging the subject into it, and resets the
// clone to baseline after every candidate, also when ctx is cancelled. A failed reset stops the
// scan because the clone state can no longer be trusted; the partial result is still returned.
func (x *UseCase) scanCandidates(ctx context.Context, ws *workspace, baseline string, subject types.BranchName, candidates []model.BranchRef) (*model.ScanResult, error) {
	logger := logging.From(ctx)
	result := &model.ScanResult{}
	subjectRef := model.BranchRef{Remote: ws.remote, Name: subject}.TrackingRef()
	path := ws.handle.Path

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return result, goerr.Wrap(err, "scan interrupted", goerr.V("checked", result.Checked))
		}

		outcome, err := x.checkCandidate(ctx, path, subjectRef, candidate)

		if resetErr := x.resetToBaseline(context.WithoutCancel(ctx), path, baseline); resetErr != nil {
			return result, resetErr
		}

		switch outcome {
		case model.MergeConflict:
			logger.Info("branch conflicts", "subject", subject, "branch", candidate.Name)
			result.Checked++
			result.AddConflict(candidate.Name)
		case model.MergeClean:
			result.Checked++
		case model.MergeInfraError:
			logger.Warn("skipping branch", "branch", candidate.Name, "error", err)
			result.AddSkipped(candidate.Name, err.Error())
		}
	}

	return result, nil
}

// checkCandidate checks out candidate as a fresh local branch and tries the merge without committing.
func (x *UseCase) checkCandidate(ctx context.Context, path, subjectRef string, candidate model.BranchRef) (model.MergeOutcome, error) {
	if err := x.checkoutCandidate(ctx, path, candidate); err != nil {
		return model.MergeInfraError, err
	}
	return x.mergeAttempt(ctx, path, subjectRef)
}

func (x *UseCase) checkoutCandidate(ctx context.Context, path string, candidate model.BranchRef) error {
	name := string(candidate.Name)

	// A local branch left by an earlier scan may point to an outdated commit
	if _, err := x.git(ctx, path, nil, "show-ref", "--verify", "--quiet", "refs/heads/"+name); err == nil {
		if _, err := x.git(ctx, path, nil, "branch", "-D", name); err != nil {
			return goerr.Wrap(err, "failed to delete local branch", goerr.V("branch", name))
		}
	} else if !isExitStatus(err, 1) {
		return goerr.Wrap(err, "failed to look up local branch", goerr.V("branch", name))
	}

	if _, err := x.git(ctx, path, nil, "checkout", "-b", name, candidate.TrackingRef()); err != nil {
		return goerr.Wrap(err, "failed to check out branch", goerr.V("branch", name))
	}
	return nil
}

// mergeAttempt merges subjectRef into the checked out branch without committing. Only a
// failure reported as a content conflict counts as MergeConflict.
func (x *UseCase) mergeAttempt(ctx context.Context, path, subjectRef string) (model.MergeOutcome, error) {
	_, err := x.git(ctx, path, x.mergeIdentityEnv(), "merge", "--no-commit", "--no-ff", subjectRef)
	if err == nil {
		return model.MergeClean, nil
	}

	var failure *types.CommandFailure
	if errors.As(err, &failure) && failure.ExitStatus > 0 && hasConflictMarker(failure.Stdout+failure.Stderr) {
		return model.MergeConflict, nil
	}

	return model.MergeInfraError, goerr.Wrap(err, "merge failed without conflict", goerr.V("subject", subjectRef))
}

// mergeIdentityEnv overrides author and committer so merges work on hosts without user.name
// and user.email.
func (x *UseCase) mergeIdentityEnv() []string {
	return []string{
		"GIT_AUTHOR_NAME=" + x.mergeName,
		"GIT_AUTHOR_EMAIL=" + x.mergeEmail,
		"GIT_COMMITTER_NAME=" + x.mergeName,
		"GIT_COMMITTER_EMAIL=" + x.mergeEmail,
	}
}

func hasConflictMarker(output string) bool {
	for _, marker := range conflictMarkers {
		if strings.Contains(output, marker) {
			return true
		}
	}
	return false
}

func isExitStatus(err error, status int) bool {
	var failure *types.CommandFailure
	return errors.As(err, &failure) && failure.ExitStatus == status
}
