package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/repository"
)

type scanRepository struct {
	mu sync.RWMutex
	// owner/repo -> scan ID -> record
	repos map[string]map[string]*model.ScanRecord
}

func repoKey(owner types.RepoOwner, repo types.RepoName) string {
	return string(owner) + "/" + string(repo)
}

func (r *scanRepository) PutScan(ctx context.Context, record *model.ScanRecord) error {
	if record == nil || record.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "scan record has no ID")
	}
	if record.Owner == "" || record.Repository == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", record.Owner),
			goerr.V("repo", record.Repository),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := repoKey(record.Owner, record.Repository)
	scans, exists := r.repos[key]
	if !exists {
		scans = make(map[string]*model.ScanRecord)
		r.repos[key] = scans
	}
	scans[string(record.ID)] = copyScanRecord(record)

	return nil
}

func (r *scanRepository) GetScan(ctx context.Context, owner types.RepoOwner, repo types.RepoName, id types.ScanID) (*model.ScanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scans, exists := r.repos[repoKey(owner, repo)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	record, exists := scans[string(id)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "scan not found",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("id", id),
		)
	}

	return copyScanRecord(record), nil
}

func (r *scanRepository) ListScans(ctx context.Context, owner types.RepoOwner, repo types.RepoName, limit int) ([]*model.ScanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*model.ScanRecord
	for _, record := range r.repos[repoKey(owner, repo)] {
		records = append(records, copyScanRecord(record))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StartedAt.After(records[j].StartedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

func copyScanRecord(record *model.ScanRecord) *model.ScanRecord {
	if record == nil {
		return nil
	}
	cpy := *record

	if record.Conflicts != nil {
		cpy.Conflicts = make([]string, len(record.Conflicts))
		copy(cpy.Conflicts, record.Conflicts)
	}
	if record.Skipped != nil {
		cpy.Skipped = make([]model.SkippedBranch, len(record.Skipped))
		copy(cpy.Skipped, record.Skipped)
	}

	return &cpy
}
