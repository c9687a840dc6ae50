package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

// repoLocker serializes all work on one working clone within this process.
type repoLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func newRepoLocker() *repoLocker {
	return &repoLocker{
		locks: make(map[string]chan struct{}),
	}
}

// Lock blocks until key is free or ctx is done. The returned func releases the lock.
func (x *repoLocker) Lock(ctx context.Context, key string) (func(), error) {
	x.mu.Lock()
	ch, ok := x.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		x.locks[key] = ch
	}
	x.mu.Unlock()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, goerr.Wrap(types.ErrLockWait, "context done while waiting for repository lock",
			goerr.V("key", key),
			goerr.V("cause", ctx.Err().Error()),
		)
	}
}
