package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/repository/memory"
	"github.com/Cielo24/git-conflict-detector/pkg/repository/testhelper"
)

func TestMemoryScanRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}

func TestMemoryScanRepositoryCopiesRecords(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	record := &model.ScanRecord{
		ID:         types.NewScanID(),
		Owner:      "Cielo24",
		Repository: "web",
		Branch:     "feature-x",
		Status:     model.ScanStatusConflict,
		Conflicts:  []string{"release-1"},
		StartedAt:  time.Now(),
	}
	gt.NoError(t, repo.PutScan(ctx, record))

	record.Conflicts[0] = "changed"
	got := gt.R1(repo.GetScan(ctx, "Cielo24", "web", record.ID)).NoError(t)
	gt.V(t, got.Conflicts[0]).Equal("release-1")

	got.Conflicts[0] = "changed again"
	again := gt.R1(repo.GetScan(ctx, "Cielo24", "web", record.ID)).NoError(t)
	gt.V(t, again.Conflicts[0]).Equal("release-1")
}
