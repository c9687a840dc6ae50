package usecase

import (
	"context"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
)

// Export unexported functions for testing
var (
	TruncateSummaryForTest  = truncateSummary
	ComposeAlertForTest     = composeAlert
	FilterCandidatesForTest = filterCandidates
	QueueRecordNameForTest  = queueRecordName
	TokenAuthEnvForTest     = tokenAuthEnv
	ExpandCloneURLForTest   = expandCloneURL
	NewRepoLockerForTest    = newRepoLocker
)

func (x *UseCase) MergeAttemptForTest(ctx context.Context, path, subjectRef string) (model.MergeOutcome, error) {
	return x.mergeAttempt(ctx, path, subjectRef)
}
