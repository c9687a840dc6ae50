package cli

import (
	"net/url"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

// Checkout identifies the branch to scan. Empty fields are filled from a local clone by
// DetectCheckout.
type Checkout struct {
	Owner  types.RepoOwner
	Name   types.RepoName
	Branch types.BranchName
	Pusher string
}

// DetectCheckout fills empty fields of c from the git repository containing dir: the branch
// from HEAD, owner and name from the URL of remote, and the pusher from the user.name setting.
func DetectCheckout(dir, remote string, c *Checkout) error {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	if c.Branch == "" {
		head, err := repo.Head()
		if err != nil {
			return goerr.Wrap(err, "failed to get HEAD")
		}
		if !head.Name().IsBranch() {
			return goerr.New("HEAD is not on a branch, specify --branch", goerr.V("head", head.Name().String()))
		}
		c.Branch = types.BranchName(head.Name().Short())
	}

	if c.Owner == "" || c.Name == "" {
		r, err := repo.Remote(remote)
		if err != nil {
			return goerr.Wrap(err, "failed to get remote", goerr.V("remote", remote))
		}
		if len(r.Config().URLs) == 0 {
			return goerr.New("no remote URL found", goerr.V("remote", remote))
		}

		remoteURL := r.Config().URLs[0]
		owner, name, ok := parseRemoteURL(remoteURL)
		if !ok {
			return goerr.New("failed to parse owner/repo from git remote URL", goerr.V("url", remoteURL))
		}
		if c.Owner == "" {
			c.Owner = types.RepoOwner(owner)
		}
		if c.Name == "" {
			c.Name = types.RepoName(name)
		}
	}

	if c.Pusher == "" {
		if cfg, err := repo.ConfigScoped(config.GlobalScope); err == nil {
			c.Pusher = cfg.User.Name
		}
	}

	return nil
}

// parseRemoteURL extracts owner and repository name from remote URLs such as
// git@github.com:owner/repo.git, ssh://git@host/owner/repo and https://github.com/owner/repo.git.
func parseRemoteURL(remoteURL string) (owner, name string, ok bool) {
	var p string
	if strings.Contains(remoteURL, "://") {
		u, err := url.Parse(remoteURL)
		if err != nil {
			return "", "", false
		}
		p = u.Path
	} else if _, after, found := strings.Cut(remoteURL, ":"); found {
		p = after
	} else {
		p = remoteURL
	}

	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	dir, name := path.Split(p)
	owner = path.Base(strings.TrimSuffix(dir, "/"))
	if owner == "" || owner == "." || owner == "/" || name == "" {
		return "", "", false
	}
	return owner, name, true
}
