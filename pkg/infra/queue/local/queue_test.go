package local_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/infra/queue/local"
)

func TestQueue(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), ".queue")
	q := gt.R1(local.New(dir)).NoError(t)

	gt.NoError(t, q.Put(ctx, "002-b", []byte(`{"n":2}`)))
	gt.NoError(t, q.Put(ctx, "001-a", []byte(`{"n":1}`)))
	gt.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0750))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, ".incoming-123"), []byte("partial"), 0600))

	names := gt.R1(q.List(ctx)).NoError(t)
	gt.V(t, names).Equal([]string{"001-a", "002-b"})

	data := gt.R1(q.Read(ctx, "001-a")).NoError(t)
	gt.V(t, string(data)).Equal(`{"n":1}`)

	gt.NoError(t, q.Delete(ctx, "001-a"))
	gt.NoError(t, q.Delete(ctx, "001-a"))

	names = gt.R1(q.List(ctx)).NoError(t)
	gt.V(t, names).Equal([]string{"002-b"})
}

func TestQueueRejectsIllegalNames(t *testing.T) {
	ctx := context.Background()
	q := gt.R1(local.New(t.TempDir())).NoError(t)

	gt.Error(t, q.Put(ctx, "../escape", []byte("x")))
	gt.Error(t, q.Put(ctx, ".hidden", []byte("x")))
	gt.Error(t, q.Put(ctx, "", []byte("x")))
	_, err := q.Read(ctx, "a/b")
	gt.Error(t, err)
}
