package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/errutil"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

type disposition int

const (
	// dispositionProcessed: the record reached a final outcome and is deleted.
	dispositionProcessed disposition = iota
	// dispositionDropped: the record can never be processed and is deleted.
	dispositionDropped
	// dispositionRetained: the record failed for a reason that may go away and stays queued.
	dispositionRetained
)

// EnqueuePushEvent stores a raw push payload in the queue and returns the record name. Names
// sort in arrival order.
func (x *UseCase) EnqueuePushEvent(ctx context.Context, payload []byte) (string, error) {
	queue := x.clients.Queue()
	if queue == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "queue is not configured")
	}

	ev, err := model.ParsePushEvent(payload)
	if err != nil {
		return "", err
	}

	name := queueRecordName(logging.CtxTime(ctx).UnixNano(), ev.Before, ev.After)
	if err := queue.Put(ctx, name, payload); err != nil {
		return "", goerr.Wrap(err, "failed to enqueue push event", goerr.V("name", name))
	}

	logging.From(ctx).Info("push event queued",
		"name", name,
		"owner", ev.RepositoryOwner,
		"repo", ev.RepositoryName,
		"ref", ev.Ref,
	)
	return name, nil
}

func queueRecordName(unixNano int64, before, after string) string {
	return fmt.Sprintf("%019d-%s-%s.json", unixNano, sanitizeRev(before), sanitizeRev(after))
}

// sanitizeRev keeps only characters that are safe in a record name.
func sanitizeRev(rev string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return r
		default:
			return -1
		}
	}, rev)
	if clean == "" {
		return "none"
	}
	return clean
}

// ProcessQueue makes one pass over the queue in arrival order. Records are deleted once they
// reach a final outcome and kept when they failed on something transient, so a later pass
// retries them. It stops early when ctx is cancelled.
func (x *UseCase) ProcessQueue(ctx context.Context) (*model.QueueReport, error) {
	queue := x.clients.Queue()
	if queue == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "queue is not configured")
	}

	names, err := queue.List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list queue")
	}

	report := &model.QueueReport{}
	for _, name := range names {
		if ctx.Err() != nil {
			logging.From(ctx).Info("queue processing interrupted", "remaining", len(names)-report.Processed-report.Dropped-report.Retained)
			break
		}

		recordCtx := logging.With(ctx, logging.From(ctx).With("record", name))
		switch x.processRecord(recordCtx, queue, name) {
		case dispositionProcessed:
			report.Processed++
			x.deleteRecord(recordCtx, queue, name)
		case dispositionDropped:
			report.Dropped++
			x.deleteRecord(recordCtx, queue, name)
		case dispositionRetained:
			report.Retained++
		}
	}

	return report, nil
}

func (x *UseCase) processRecord(ctx context.Context, queue interfaces.Queue, name string) disposition {
	data, err := queue.Read(ctx, name)
	if err != nil {
		errutil.HandleError(ctx, "failed to read queue record", err)
		return dispositionRetained
	}

	ev, err := model.ParsePushEvent(data)
	if err != nil {
		errutil.HandleError(ctx, "dropping unreadable queue record", err)
		return dispositionDropped
	}

	if _, err := x.DetectConflicts(ctx, ev); err != nil {
		return classifyFailure(ctx, err)
	}
	return dispositionProcessed
}

func classifyFailure(ctx context.Context, err error) disposition {
	switch {
	case errors.Is(err, types.ErrParsePayload):
		errutil.HandleError(ctx, "dropping invalid push event", err)
		return dispositionDropped
	case errors.Is(err, types.ErrCloneFailure):
		errutil.HandleError(ctx, "dropping push event of repository that cannot be cloned", err)
		return dispositionDropped
	default:
		errutil.HandleError(ctx, "conflict scan failed, record is kept for retry", err)
		return dispositionRetained
	}
}

func (x *UseCase) deleteRecord(ctx context.Context, queue interfaces.Queue, name string) {
	if err := queue.Delete(ctx, name); err != nil {
		errutil.HandleError(ctx, "failed to delete queue record", goerr.Wrap(err, "queue delete failed", goerr.V("name", name)))
	}
}
