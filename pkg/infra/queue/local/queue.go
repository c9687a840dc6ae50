package local

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/safe"
)

// Queue stores one file per queued record in a directory.
type Queue struct {
	dir string
}

var _ interfaces.Queue = (*Queue)(nil)

func New(dir string) (*Queue, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, goerr.Wrap(err, "failed to create queue directory", goerr.V("dir", dir))
	}
	return &Queue{dir: dir}, nil
}

func validateName(name string) error {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return goerr.Wrap(types.ErrInvalidOption, "illegal queue record name", goerr.V("name", name))
	}
	return nil
}

func (x *Queue) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(x.dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read queue directory", goerr.V("dir", x.dir))
	}

	// ReadDir returns entries sorted by file name
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (x *Queue) Read(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(x.dir, name))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read queue record", goerr.V("name", name))
	}
	return data, nil
}

func (x *Queue) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(x.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return goerr.Wrap(err, "failed to delete queue record", goerr.V("name", name))
	}
	return nil
}

// Put writes to a hidden temporary file first so List never returns a partially written record.
func (x *Queue) Put(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(x.dir, ".incoming-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file for queue record", goerr.V("dir", x.dir))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		safe.Close(tmp)
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to write queue record", goerr.V("name", name))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to close queue record", goerr.V("name", name))
	}

	if err := os.Rename(tmpName, filepath.Join(x.dir, name)); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to move queue record into place", goerr.V("name", name))
	}
	return nil
}
