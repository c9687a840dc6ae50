package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/cli"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/mock"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/repository/memory"
)

func TestDrainQueue(t *testing.T) {
	t.Run("report is consumed", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ProcessQueueFunc: func(ctx context.Context) (*model.QueueReport, error) {
				return &model.QueueReport{Processed: 2, Retained: 1}, nil
			},
		}
		cli.DrainQueueForTest(context.Background(), uc)
		gt.A(t, uc.ProcessQueueCalls()).Length(1)
	})

	t.Run("error does not panic", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ProcessQueueFunc: func(ctx context.Context) (*model.QueueReport, error) {
				return nil, errors.New("queue unavailable")
			},
		}
		cli.DrainQueueForTest(context.Background(), uc)
		gt.A(t, uc.ProcessQueueCalls()).Length(1)
	})
}

func TestRunWorker(t *testing.T) {
	t.Run("wakeup triggers an immediate pass", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var count atomic.Int32
		passes := make(chan struct{}, 10)
		uc := &mock.UseCaseMock{
			ProcessQueueFunc: func(ctx context.Context) (*model.QueueReport, error) {
				count.Add(1)
				passes <- struct{}{}
				return &model.QueueReport{}, nil
			},
		}

		wake, notify := cli.NewWakeupForTest()
		done := make(chan error, 1)
		go func() {
			done <- cli.RunWorkerForTest(ctx, uc, time.Hour, wake)
		}()

		<-passes
		notify()
		select {
		case <-passes:
		case <-time.After(5 * time.Second):
			t.Fatal("worker did not wake up")
		}

		cancel()
		gt.NoError(t, <-done)
		gt.True(t, count.Load() >= 2)
	})

	t.Run("ticker keeps polling", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		passes := make(chan struct{}, 10)
		uc := &mock.UseCaseMock{
			ProcessQueueFunc: func(ctx context.Context) (*model.QueueReport, error) {
				select {
				case passes <- struct{}{}:
				default:
				}
				return &model.QueueReport{}, nil
			},
		}

		done := make(chan error, 1)
		go func() {
			done <- cli.RunWorkerForTest(ctx, uc, 10*time.Millisecond, nil)
		}()

		for range 3 {
			select {
			case <-passes:
			case <-time.After(5 * time.Second):
				t.Fatal("worker did not poll")
			}
		}

		cancel()
		gt.NoError(t, <-done)
	})
}

func TestWakeupCoalesces(t *testing.T) {
	wake, notify := cli.NewWakeupForTest()
	notify()
	notify()
	notify()

	<-wake
	select {
	case <-wake:
		t.Fatal("pending wakeups should be coalesced")
	default:
	}
}

func TestPrintScanResult(t *testing.T) {
	t.Run("conflicts and skipped branches", func(t *testing.T) {
		var buf bytes.Buffer
		result := &model.ScanResult{Checked: 3}
		result.AddConflict("release-1")
		result.AddSkipped("broken", "checkout failed")

		gt.NoError(t, cli.PrintScanResultForTest(&buf, "feature-x", result))

		var out map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		gt.V(t, out["branch"]).Equal("feature-x")
		gt.V(t, out["checked"]).Equal(float64(3))
		gt.A(t, out["conflicts"].([]any)).Length(1)
		gt.A(t, out["skipped"].([]any)).Length(1)
	})

	t.Run("nil result is printed as empty lists", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, cli.PrintScanResultForTest(&buf, "feature-x", nil))
		gt.True(t, strings.Contains(buf.String(), `"conflicts": []`))
	})
}

func TestPrintHistory(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, branch := range []types.BranchName{"a", "b", "c"} {
		record := &model.ScanRecord{
			ID:         types.NewScanID(),
			Owner:      "Cielo24",
			Repository: "web",
			Branch:     branch,
			Status:     model.ScanStatusClean,
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		gt.NoError(t, repo.PutScan(ctx, record))
	}

	var buf bytes.Buffer
	gt.NoError(t, cli.PrintHistoryForTest(ctx, &buf, repo, "Cielo24", "web", 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	gt.A(t, lines).Length(2)

	var first model.ScanRecord
	gt.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	gt.V(t, first.Branch).Equal("c")
}
