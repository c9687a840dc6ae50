package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/usecase"
)

func TestRepoLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("same key waits for release", func(t *testing.T) {
		locker := usecase.NewRepoLockerForTest()
		unlock := gt.R1(locker.Lock(ctx, "web")).NoError(t)

		acquired := make(chan struct{})
		go func() {
			release, err := locker.Lock(ctx, "web")
			if err == nil {
				close(acquired)
				release()
			}
		}()

		select {
		case <-acquired:
			t.Fatal("lock acquired while held")
		case <-time.After(50 * time.Millisecond):
		}

		unlock()
		select {
		case <-acquired:
		case <-time.After(5 * time.Second):
			t.Fatal("lock not acquired after release")
		}
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		locker := usecase.NewRepoLockerForTest()
		unlockA := gt.R1(locker.Lock(ctx, "web")).NoError(t)
		defer unlockA()

		waitCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		unlockB := gt.R1(locker.Lock(waitCtx, "api")).NoError(t)
		unlockB()
	})

	t.Run("waiting gives up when context is done", func(t *testing.T) {
		locker := usecase.NewRepoLockerForTest()
		unlock := gt.R1(locker.Lock(ctx, "web")).NoError(t)
		defer unlock()

		waitCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()
		_, err := locker.Lock(waitCtx, "web")
		gt.True(t, errors.Is(err, types.ErrLockWait))
	})
}
