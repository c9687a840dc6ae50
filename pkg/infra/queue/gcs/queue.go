package gcs

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/safe"
)

// Queue stores queued records as objects under a prefix of a Cloud Storage bucket.
type Queue struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.Queue = (*Queue)(nil)

func New(ctx context.Context, bucket, prefix string, options ...option.ClientOption) (*Queue, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is empty")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	return &Queue{client: client, bucket: bucket, prefix: prefix}, nil
}

func (x *Queue) objectName(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name != path.Base(name) {
		return "", goerr.Wrap(types.ErrInvalidOption, "illegal queue record name", goerr.V("name", name))
	}
	return x.prefix + name, nil
}

// List returns object names relative to the prefix. Cloud Storage lists in lexical order.
func (x *Queue) List(ctx context.Context) ([]string, error) {
	it := x.client.Bucket(x.bucket).Objects(ctx, &storage.Query{
		Prefix:    x.prefix,
		Delimiter: "/",
	})

	var names []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list queue objects", goerr.V("bucket", x.bucket), goerr.V("prefix", x.prefix))
		}
		if attrs.Name == "" {
			continue // synthetic directory entry
		}
		names = append(names, strings.TrimPrefix(attrs.Name, x.prefix))
	}
	return names, nil
}

func (x *Queue) Read(ctx context.Context, name string) ([]byte, error) {
	obj, err := x.objectName(name)
	if err != nil {
		return nil, err
	}

	r, err := x.client.Bucket(x.bucket).Object(obj).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open queue object", goerr.V("bucket", x.bucket), goerr.V("object", obj))
	}
	defer safe.Close(r)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read queue object", goerr.V("bucket", x.bucket), goerr.V("object", obj))
	}
	return data, nil
}

func (x *Queue) Delete(ctx context.Context, name string) error {
	obj, err := x.objectName(name)
	if err != nil {
		return err
	}

	if err := x.client.Bucket(x.bucket).Object(obj).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return goerr.Wrap(err, "failed to delete queue object", goerr.V("bucket", x.bucket), goerr.V("object", obj))
	}
	return nil
}

func (x *Queue) Put(ctx context.Context, name string, data []byte) error {
	obj, err := x.objectName(name)
	if err != nil {
		return err
	}

	w := x.client.Bucket(x.bucket).Object(obj).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		safe.Close(w)
		return goerr.Wrap(err, "failed to write queue object", goerr.V("bucket", x.bucket), goerr.V("object", obj))
	}
	// Close commits the upload
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to commit queue object", goerr.V("bucket", x.bucket), goerr.V("object", obj))
	}
	return nil
}
