package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/testutil"
)

// gitFixture is a remote repository with these branches, all forked from main:
//
//	develop:   adds dev.txt
//	release-1: rewrites line 2 of a.txt
//	feature-x: rewrites line 2 of a.txt differently
//
// so feature-x conflicts with release-1 only.
type gitFixture struct {
	root     string
	work     string
	origin   string
	cacheDir string
	cloneURL string
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func commitAll(t *testing.T, dir, msg string) {
	t.Helper()
	testutil.RunGit(t, dir, "add", "-A")
	testutil.RunGit(t, dir, "commit", "--quiet", "-m", msg)
}

func setupGitFixture(t *testing.T) *gitFixture {
	t.Helper()
	testutil.LookupGitOrSkip(t)
	testutil.IsolateGit(t)

	root := t.TempDir()
	fx := &gitFixture{
		root:     root,
		work:     filepath.Join(root, "work"),
		origin:   filepath.Join(root, "remote", "Cielo24", "web.git"),
		cacheDir: filepath.Join(root, "cache"),
		cloneURL: filepath.Join(root, "remote", "{owner}", "{name}.git"),
	}
	gt.NoError(t, os.MkdirAll(fx.work, 0755))

	testutil.RunGit(t, fx.work, "init", "--quiet")
	testutil.RunGit(t, fx.work, "symbolic-ref", "HEAD", "refs/heads/main")
	writeFile(t, fx.work, "a.txt", "line1\nline2\nline3\n")
	commitAll(t, fx.work, "initial")

	testutil.RunGit(t, fx.work, "checkout", "--quiet", "-b", "develop", "main")
	writeFile(t, fx.work, "dev.txt", "dev\n")
	commitAll(t, fx.work, "add dev")

	testutil.RunGit(t, fx.work, "checkout", "--quiet", "-b", "release-1", "main")
	writeFile(t, fx.work, "a.txt", "line1\nrelease\nline3\n")
	commitAll(t, fx.work, "release change")

	testutil.RunGit(t, fx.work, "checkout", "--quiet", "-b", "feature-x", "main")
	writeFile(t, fx.work, "a.txt", "line1\nfeature\nline3\n")
	commitAll(t, fx.work, "feature change")

	testutil.RunGit(t, fx.work, "checkout", "--quiet", "main")
	gt.NoError(t, os.MkdirAll(filepath.Dir(fx.origin), 0755))
	testutil.RunGit(t, root, "clone", "--quiet", "--bare", fx.work, fx.origin)

	return fx
}

// pushBranch creates name from main in the work tree with a.txt line 2 set to line2, and
// pushes it to the remote.
func (x *gitFixture) pushBranch(t *testing.T, name, line2 string) {
	t.Helper()
	testutil.RunGit(t, x.work, "checkout", "--quiet", "-b", name, "main")
	writeFile(t, x.work, "a.txt", "line1\n"+line2+"\nline3\n")
	commitAll(t, x.work, "change on "+name)
	testutil.RunGit(t, x.work, "checkout", "--quiet", "main")
	testutil.RunGit(t, x.work, "push", "--quiet", x.origin, name)
}

func (x *gitFixture) clonePath() string {
	return filepath.Join(x.cacheDir, "web")
}

// assertCleanBaseline checks that the working clone has no changes, no merge in progress and
// HEAD at the remote default branch.
func (x *gitFixture) assertCleanBaseline(t *testing.T) {
	t.Helper()
	path := x.clonePath()
	gt.V(t, testutil.RunGit(t, path, "status", "--porcelain")).Equal("")
	_, err := os.Stat(filepath.Join(path, ".git", "MERGE_HEAD"))
	gt.True(t, os.IsNotExist(err))
	gt.V(t, testutil.RunGit(t, path, "rev-parse", "HEAD")).Equal(testutil.RunGit(t, path, "rev-parse", "origin/main"))
}

func newPushEvent(subject, pusher string) *model.PushEvent {
	return &model.PushEvent{
		Ref:             "refs/heads/" + subject,
		Before:          "1111111111111111111111111111111111111111",
		After:           "2222222222222222222222222222222222222222",
		RepositoryOwner: "Cielo24",
		RepositoryName:  "web",
		PusherName:      pusher,
		Commits: []model.Commit{
			{AuthorName: "Alice", Message: "Rewrite line two"},
			{AuthorName: "Bob", Message: "Follow up"},
			{AuthorName: "Alice", Message: "Fix typo"},
		},
	}
}

func testSettings() model.Settings {
	return model.Settings{
		ChatURL:        model.DefaultChatURL,
		ChatRoomID:     "12345",
		ChatToken:      "test-token",
		ChatSenderName: "Conflicts",
		MentionMap: map[string]string{
			"alice": "AliceH",
		},
	}
}
