package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/safe"
)

// workspace is the working clone of one repository plus what is needed to talk to its remote.
type workspace struct {
	handle *model.RepositoryHandle
	remote string
	// authEnv carries credentials for remote access. It is passed only through the environment.
	authEnv []string
}

func expandCloneURL(tmpl string, owner types.RepoOwner, name types.RepoName) string {
	return strings.NewReplacer("{owner}", string(owner), "{name}", string(name)).Replace(tmpl)
}

// tokenAuthEnv configures git to send the installation token as basic auth without writing it
// to the clone's config or the command line.
func tokenAuthEnv(token string) []string {
	cred := base64.StdEncoding.EncodeToString([]byte("x-access-token:" + token))
	return []string{
		"GIT_CONFIG_COUNT=1",
		"GIT_CONFIG_KEY_0=http.extraHeader",
		"GIT_CONFIG_VALUE_0=Authorization: Basic " + cred,
	}
}

func (x *UseCase) newWorkspace(ctx context.Context, ev *model.PushEvent) (*workspace, error) {
	ws := &workspace{
		remote: x.settings.RemoteName(),
	}

	url := expandCloneURL(x.cloneURL, ev.RepositoryOwner, ev.RepositoryName)
	if app := x.clients.GitHubApp(); app != nil && ev.InstallationID != 0 {
		token, err := app.InstallationToken(ctx, ev.InstallationID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get installation token",
				goerr.V("owner", ev.RepositoryOwner),
				goerr.V("repo", ev.RepositoryName),
			)
		}
		url = expandCloneURL(x.appCloneURL, ev.RepositoryOwner, ev.RepositoryName)
		ws.authEnv = tokenAuthEnv(token)
	}

	ws.handle = model.NewRepositoryHandle(x.cacheDir, ev.RepositoryOwner, ev.RepositoryName, url)
	return ws, nil
}

func (x *UseCase) git(ctx context.Context, dir string, env []string, args ...string) (string, error) {
	return x.clients.Git().Run(ctx, &interfaces.GitCommand{
		Dir:  dir,
		Args: args,
		Env:  env,
	})
}

// ensureCloned clones the repository when no working clone exists. It reports whether a clone
// was made. A partial clone is removed on failure.
func (x *UseCase) ensureCloned(ctx context.Context, ws *workspace) (bool, error) {
	path := ws.handle.Path
	if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, goerr.Wrap(types.ErrCloneFailure, "failed to inspect working clone",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}

	// A directory without .git is left over from an interrupted clone
	if _, err := os.Stat(path); err == nil {
		logging.From(ctx).Warn("removing incomplete working clone", "path", path)
		safe.RemoveAll(path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, goerr.Wrap(types.ErrCloneFailure, "failed to create cache directory",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}

	if _, err := x.git(ctx, "", ws.authEnv, "clone", "--origin", ws.remote, ws.handle.URL, path); err != nil {
		safe.RemoveAll(path)
		return false, goerr.Wrap(types.ErrCloneFailure, "git clone failed",
			goerr.V("url", ws.handle.URL),
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}

	return true, nil
}

// refresh brings every remote-tracking ref of an existing clone up to date.
func (x *UseCase) refresh(ctx context.Context, ws *workspace) error {
	if _, err := x.git(ctx, ws.handle.Path, ws.authEnv, "fetch", "--all", "--prune"); err != nil {
		return goerr.Wrap(err, "failed to fetch repository", goerr.V("path", ws.handle.Path))
	}
	return nil
}

// resolveBaseline returns the ref the clone is reset to between candidates: the configured
// baseline branch, or the remote's default branch.
func (x *UseCase) resolveBaseline(ctx context.Context, ws *workspace) (string, error) {
	if x.settings.BaselineBranch != "" {
		return ws.remote + "/" + x.settings.BaselineBranch, nil
	}

	headRef := "refs/remotes/" + ws.remote + "/HEAD"
	out, err := x.git(ctx, ws.handle.Path, nil, "symbolic-ref", "--short", headRef)
	if err != nil {
		// Clones made before the remote had a default branch lack the symbolic ref
		if _, setErr := x.git(ctx, ws.handle.Path, ws.authEnv, "remote", "set-head", ws.remote, "--auto"); setErr != nil {
			return "", goerr.Wrap(setErr, "failed to determine default branch", goerr.V("remote", ws.remote))
		}
		if out, err = x.git(ctx, ws.handle.Path, nil, "symbolic-ref", "--short", headRef); err != nil {
			return "", goerr.Wrap(err, "failed to determine default branch", goerr.V("remote", ws.remote))
		}
	}

	baseline := strings.TrimSpace(out)
	if baseline == "" {
		return "", goerr.New("remote default branch is empty", goerr.V("remote", ws.remote))
	}
	return baseline, nil
}

// resetToBaseline discards any merge in progress, local changes and untracked files, then
// detaches HEAD at baseline. Running it twice in a row has no further effect.
func (x *UseCase) resetToBaseline(ctx context.Context, path, baseline string) error {
	steps := [][]string{
		{"reset", "--hard"},
		{"clean", "-f", "-d"},
		{"checkout", "--detach", "--force", baseline},
	}
	for _, args := range steps {
		if _, err := x.git(ctx, path, nil, args...); err != nil {
			return goerr.Wrap(err, "failed to reset working clone",
				goerr.V("path", path),
				goerr.V("baseline", baseline),
			)
		}
	}
	return nil
}
