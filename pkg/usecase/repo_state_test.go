package usecase_test

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/mock"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/infra"
	"github.com/Cielo24/git-conflict-detector/pkg/usecase"
)

func TestExpandCloneURL(t *testing.T) {
	gt.V(t, usecase.ExpandCloneURLForTest(usecase.DefaultCloneURL, "Cielo24", "web")).Equal("git@github.com:Cielo24/web.git")
	gt.V(t, usecase.ExpandCloneURLForTest(usecase.DefaultAppCloneURL, "Cielo24", "web")).Equal("https://github.com/Cielo24/web.git")
	gt.V(t, usecase.ExpandCloneURLForTest("/srv/git/{name}", "Cielo24", "web")).Equal("/srv/git/web")
}

func TestTokenAuthEnv(t *testing.T) {
	env := usecase.TokenAuthEnvForTest("ghs_secret")
	gt.V(t, env[0]).Equal("GIT_CONFIG_COUNT=1")
	gt.V(t, env[1]).Equal("GIT_CONFIG_KEY_0=http.extraHeader")

	value, ok := strings.CutPrefix(env[2], "GIT_CONFIG_VALUE_0=Authorization: Basic ")
	gt.True(t, ok)
	decoded := gt.R1(base64.StdEncoding.DecodeString(value)).NoError(t)
	gt.V(t, string(decoded)).Equal("x-access-token:ghs_secret")
}

func TestCloneWithInstallationToken(t *testing.T) {
	var cloneCmd *interfaces.GitCommand
	gitMock := &mock.GitMock{
		RunFunc: func(ctx context.Context, cmd *interfaces.GitCommand) (string, error) {
			if cmd.Args[0] == "clone" {
				cloneCmd = cmd
			}
			return "", &types.CommandFailure{Command: cmd.Args, ExitStatus: 128}
		},
	}
	appMock := &mock.GitHubAppMock{
		InstallationTokenFunc: func(ctx context.Context, installID types.GitHubAppInstallID) (string, error) {
			gt.V(t, installID).Equal(types.GitHubAppInstallID(99))
			return "ghs_secret", nil
		},
	}

	uc := usecase.New(
		infra.New(infra.WithGit(gitMock), infra.WithGitHubApp(appMock)),
		usecase.WithSettings(testSettings()),
		usecase.WithCacheDir(t.TempDir()),
	)

	ev := newPushEvent("feature-x", "alice")
	ev.InstallationID = 99
	_, err := uc.DetectConflicts(context.Background(), ev)
	gt.Error(t, err)

	gt.True(t, cloneCmd != nil)
	gt.V(t, cloneCmd.Args[:4]).Equal([]string{"clone", "--origin", "origin", "https://github.com/Cielo24/web.git"})
	// The token never appears in the arguments, which are logged
	gt.False(t, strings.Contains(strings.Join(cloneCmd.Args, " "), "ghs_secret"))
	gt.A(t, cloneCmd.Env).Length(3)
	gt.A(t, appMock.InstallationTokenCalls()).Length(1)
}
