package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/repository"
)

// TestAll runs all test cases for ScanRepository
// This is the main entry point for testing any ScanRepository implementation
func TestAll(t *testing.T, repo interfaces.ScanRepository) {
	t.Run("ScanPutGet", func(t *testing.T) {
		TestScanPutGet(t, repo)
	})
	t.Run("ScanNotFound", func(t *testing.T) {
		TestScanNotFound(t, repo)
	})
	t.Run("ScanListOrder", func(t *testing.T) {
		TestScanListOrder(t, repo)
	})
}

func newRepoName() (types.RepoOwner, types.RepoName) {
	owner := types.RepoOwner(fmt.Sprintf("owner-%s", uuid.New().String()[:8]))
	name := types.RepoName(fmt.Sprintf("repo-%s", uuid.New().String()[:8]))
	return owner, name
}

func newRecord(owner types.RepoOwner, name types.RepoName, startedAt time.Time) *model.ScanRecord {
	return &model.ScanRecord{
		ID:         types.NewScanID(),
		Owner:      owner,
		Repository: name,
		Branch:     "feature/x",
		Pusher:     "alice",
		After:      "0123456789abcdef",
		Status:     model.ScanStatusConflict,
		Conflicts:  []string{"release-1", "release/2"},
		Skipped: []model.SkippedBranch{
			{Name: "broken", Reason: "checkout failed"},
		},
		Checked:    3,
		Notified:   true,
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(2 * time.Second),
	}
}

// TestScanPutGet tests that a stored scan can be read back and overwritten
func TestScanPutGet(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	owner, name := newRepoName()

	record := newRecord(owner, name, time.Now().UTC().Truncate(time.Millisecond))
	gt.NoError(t, repo.PutScan(ctx, record))

	got := gt.R1(repo.GetScan(ctx, owner, name, record.ID)).NoError(t)
	gt.V(t, got.ID).Equal(record.ID)
	gt.V(t, got.Branch).Equal(record.Branch)
	gt.V(t, got.Status).Equal(model.ScanStatusConflict)
	gt.V(t, got.Conflicts).Equal([]string{"release-1", "release/2"})
	gt.A(t, got.Skipped).Length(1)
	gt.V(t, got.Skipped[0].Name).Equal(types.BranchName("broken"))
	gt.V(t, got.Checked).Equal(3)
	gt.True(t, got.Notified)
	gt.True(t, got.StartedAt.Equal(record.StartedAt))

	// Mutating the caller's copy must not change the stored record
	record.Conflicts[0] = "mutated"
	got = gt.R1(repo.GetScan(ctx, owner, name, record.ID)).NoError(t)
	gt.V(t, got.Conflicts[0]).Equal("release-1")

	// Overwrite with the same ID
	record.Status = model.ScanStatusClean
	record.Conflicts = []string{}
	gt.NoError(t, repo.PutScan(ctx, record))
	got = gt.R1(repo.GetScan(ctx, owner, name, record.ID)).NoError(t)
	gt.V(t, got.Status).Equal(model.ScanStatusClean)
	gt.A(t, got.Conflicts).Length(0)

	// A record without ID is rejected
	gt.Error(t, repo.PutScan(ctx, &model.ScanRecord{Owner: owner, Repository: name}))
}

// TestScanNotFound tests that missing scans return repository.ErrNotFound
func TestScanNotFound(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	owner, name := newRepoName()

	_, err := repo.GetScan(ctx, owner, name, types.NewScanID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	gt.NoError(t, repo.PutScan(ctx, newRecord(owner, name, time.Now())))
	_, err = repo.GetScan(ctx, owner, name, types.NewScanID())
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	scans := gt.R1(repo.ListScans(ctx, "nobody", "nothing", 10)).NoError(t)
	gt.A(t, scans).Length(0)
}

// TestScanListOrder tests that ListScans returns newest first and honors limit
func TestScanListOrder(t *testing.T, repo interfaces.ScanRepository) {
	ctx := context.Background()
	owner, name := newRepoName()
	base := time.Now().UTC().Truncate(time.Millisecond)

	oldest := newRecord(owner, name, base.Add(-2*time.Hour))
	middle := newRecord(owner, name, base.Add(-1*time.Hour))
	newest := newRecord(owner, name, base)
	for _, r := range []*model.ScanRecord{middle, oldest, newest} {
		gt.NoError(t, repo.PutScan(ctx, r))
	}

	// Another repository must not leak into the listing
	otherOwner, otherName := newRepoName()
	gt.NoError(t, repo.PutScan(ctx, newRecord(otherOwner, otherName, base.Add(time.Hour))))

	all := gt.R1(repo.ListScans(ctx, owner, name, 0)).NoError(t)
	gt.A(t, all).Length(3)
	gt.V(t, all[0].ID).Equal(newest.ID)
	gt.V(t, all[1].ID).Equal(middle.ID)
	gt.V(t, all[2].ID).Equal(oldest.ID)

	limited := gt.R1(repo.ListScans(ctx, owner, name, 2)).NoError(t)
	gt.A(t, limited).Length(2)
	gt.V(t, limited[0].ID).Equal(newest.ID)
	gt.V(t, limited[1].ID).Equal(middle.ID)
}
