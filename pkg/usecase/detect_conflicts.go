package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

// DetectConflicts finds the branches of the pushed repository that the pushed branch does not
// merge into cleanly, and alerts the chat room when there are any. Deleted branches and
// non-branch refs are ignored and return a nil result.
//
// The working clone is held exclusively from the first git command until it has been reset to
// baseline at the end of the scan.
func (x *UseCase) DetectConflicts(ctx context.Context, ev *model.PushEvent) (*model.ScanResult, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With(
		"owner", ev.RepositoryOwner,
		"repo", ev.RepositoryName,
		"ref", ev.Ref,
	)
	ctx = logging.With(ctx, logger)

	if ev.Deleted {
		logger.Info("branch was deleted, nothing to check")
		return nil, nil
	}
	if !ev.IsBranch() {
		logger.Info("pushed ref is not a branch, nothing to check")
		return nil, nil
	}

	ws, err := x.newWorkspace(ctx, ev)
	if err != nil {
		return nil, err
	}

	unlock, err := x.locker.Lock(ctx, ws.handle.LockKey())
	if err != nil {
		return nil, err
	}
	defer unlock()

	cloned, err := x.ensureCloned(ctx, ws)
	if err != nil {
		return nil, err
	}
	if !cloned {
		if err := x.refresh(ctx, ws); err != nil {
			return nil, err
		}
	}

	baseline, err := x.resolveBaseline(ctx, ws)
	if err != nil {
		return nil, err
	}
	if err := x.resetToBaseline(ctx, ws.handle.Path, baseline); err != nil {
		return nil, err
	}

	startedAt := logging.CtxTime(ctx)
	subject := ev.SubjectBranch()
	result, err := x.scan(ctx, ws, baseline, ev)
	if err != nil {
		// Leave the clone clean for the next event even though this scan is abandoned
		if resetErr := x.resetToBaseline(context.WithoutCancel(ctx), ws.handle.Path, baseline); resetErr != nil {
			logger.Error("failed to reset aborted scan", "error", resetErr)
		}
		x.saveScanRecord(context.WithoutCancel(ctx), model.NewScanRecord(ev, nil, startedAt, logging.CtxTime(ctx)))
		return nil, err
	}

	record := model.NewScanRecord(ev, result, startedAt, logging.CtxTime(ctx))
	if result.HasConflicts() {
		alert := composeAlert(x.settings, ev, result.Conflicts)
		record.Notified = x.notify(ctx, alert)
	} else {
		logger.Info("no conflicts found", "subject", subject, "checked", result.Checked)
	}

	x.saveScanRecord(ctx, record)
	return result, nil
}

func (x *UseCase) scan(ctx context.Context, ws *workspace, baseline string, ev *model.PushEvent) (*model.ScanResult, error) {
	candidates, err := x.listCandidates(ctx, ws.handle.Path, ev.SubjectBranch(), x.settings.IgnoreSet(), x.settings.MaxCandidates())
	if err != nil {
		return nil, err
	}
	logging.From(ctx).Info("checking branches", "subject", ev.SubjectBranch(), "candidates", len(candidates))

	result, err := x.scanCandidates(ctx, ws, baseline, ev.SubjectBranch(), candidates)
	if err != nil {
		return nil, goerr.Wrap(err, "conflict scan aborted", goerr.V("subject", ev.SubjectBranch()))
	}
	return result, nil
}
