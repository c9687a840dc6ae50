package testutil_test

import (
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/utils/testutil"
)

func TestRunGit(t *testing.T) {
	testutil.LookupGitOrSkip(t)
	testutil.IsolateGit(t)
	gt.V(t, os.Getenv("GIT_CONFIG_NOSYSTEM")).Equal("1")

	dir := t.TempDir()
	testutil.RunGit(t, dir, "init", "--quiet")
	testutil.RunGit(t, dir, "commit", "--quiet", "--allow-empty", "-m", "empty")
	gt.V(t, testutil.RunGit(t, dir, "log", "--format=%an")).Equal("Test Author")
}
