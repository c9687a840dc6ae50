package usecase

import (
	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/infra"
)

const (
	DefaultCacheDir = ".cache"

	// DefaultCloneURL is used when the repository is accessed with the worker's own SSH credentials.
	DefaultCloneURL = "git@github.com:{owner}/{name}.git"

	// DefaultAppCloneURL is used when a GitHub App installation token is available.
	DefaultAppCloneURL = "https://github.com/{owner}/{name}.git"

	DefaultMergeUserName  = "git-conflict-detector"
	DefaultMergeUserEmail = "git-conflict-detector@localhost"
)

type UseCase struct {
	clients     *infra.Clients
	settings    model.Settings
	cacheDir    string
	cloneURL    string
	appCloneURL string
	mergeName   string
	mergeEmail  string
	locker      *repoLocker
}

type Option func(*UseCase)

// WithSettings sets chat and branch selection settings. The value is copied and never mutated.
func WithSettings(settings model.Settings) Option {
	return func(x *UseCase) {
		x.settings = settings
	}
}

// WithCacheDir sets the directory holding one working clone per repository.
func WithCacheDir(dir string) Option {
	return func(x *UseCase) {
		x.cacheDir = dir
	}
}

// WithCloneURL sets the clone URL template. "{owner}" and "{name}" are replaced with the repository's owner and name.
func WithCloneURL(tmpl string) Option {
	return func(x *UseCase) {
		x.cloneURL = tmpl
	}
}

// WithAppCloneURL sets the clone URL template used with GitHub App installation tokens.
func WithAppCloneURL(tmpl string) Option {
	return func(x *UseCase) {
		x.appCloneURL = tmpl
	}
}

// WithMergeIdentity sets the identity git records for trial merges. Merges are never committed,
// but git refuses to merge without an identity.
func WithMergeIdentity(name, email string) Option {
	return func(x *UseCase) {
		x.mergeName = name
		x.mergeEmail = email
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:     clients,
		cacheDir:    DefaultCacheDir,
		cloneURL:    DefaultCloneURL,
		appCloneURL: DefaultAppCloneURL,
		mergeName:   DefaultMergeUserName,
		mergeEmail:  DefaultMergeUserEmail,
		locker:      newRepoLocker(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
