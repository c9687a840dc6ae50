package model

import (
	"path/filepath"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

// RepositoryHandle binds a repository name to its single on-disk working clone.
type RepositoryHandle struct {
	Owner types.RepoOwner
	Name  types.RepoName
	Path  string
	URL   string
}

func NewRepositoryHandle(cacheDir string, owner types.RepoOwner, name types.RepoName, url string) *RepositoryHandle {
	return &RepositoryHandle{
		Owner: owner,
		Name:  name,
		Path:  filepath.Join(cacheDir, string(name)),
		URL:   url,
	}
}

// LockKey identifies the working clone for mutual exclusion.
func (x *RepositoryHandle) LockKey() string {
	return string(x.Name)
}
