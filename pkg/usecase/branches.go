package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

// listCandidates enumerates remote-tracking branches in ref order and keeps at most maxCount of
// those that are not the subject, not HEAD and not ignored.
func (x *UseCase) listCandidates(ctx context.Context, path string, subject types.BranchName, ignore map[types.BranchName]struct{}, maxCount int) ([]model.BranchRef, error) {
	out, err := x.git(ctx, path, nil, "for-each-ref", "--format=%(refname:short)", "refs/remotes/")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list remote branches", goerr.V("path", path))
	}

	return filterCandidates(ctx, strings.Split(out, "\n"), subject, ignore, maxCount), nil
}

func filterCandidates(ctx context.Context, lines []string, subject types.BranchName, ignore map[types.BranchName]struct{}, maxCount int) []model.BranchRef {
	var candidates []model.BranchRef
	for _, line := range lines {
		if maxCount > 0 && len(candidates) >= maxCount {
			break
		}

		ref := model.ParseBranchRef(line)
		switch {
		case ref.Name == "" || ref.Name == "HEAD":
			continue
		case ref.Name == subject:
			continue
		}
		if _, ok := ignore[ref.Name]; ok {
			logging.From(ctx).Info("skipping ignored branch", "branch", ref.Name)
			continue
		}

		candidates = append(candidates, ref)
	}

	return candidates
}
