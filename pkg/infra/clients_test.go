package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/mock"
	"github.com/Cielo24/git-conflict-detector/pkg/infra"
	"github.com/Cielo24/git-conflict-detector/pkg/infra/git"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// Git falls back to the git binary on PATH
		_, ok := clients.Git().(*git.Client)
		gt.True(t, ok)
		gt.V(t, clients.Chat()).Equal(nil)
		gt.V(t, clients.Queue()).Equal(nil)
		gt.V(t, clients.GitHubApp()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.ScanRepository()).Equal(nil)
	})

	t.Run("WithGit option replaces git client", func(t *testing.T) {
		mockGit := &mock.GitMock{}
		clients := infra.New(infra.WithGit(mockGit))
		gt.V(t, clients.Git()).Equal(mockGit)
	})

	t.Run("WithChat option sets chat client", func(t *testing.T) {
		mockChat := &mock.ChatMock{}
		clients := infra.New(infra.WithChat(mockChat))
		gt.V(t, clients.Chat()).Equal(mockChat)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{}
		mockBQ := &mock.BigQueryMock{}
		mockQueue := &mock.QueueMock{}
		mockRepo := &mock.ScanRepositoryMock{}

		clients := infra.New(
			infra.WithGitHubApp(mockGH),
			infra.WithBigQuery(mockBQ),
			infra.WithQueue(mockQueue),
			infra.WithScanRepository(mockRepo),
		)

		gt.V(t, clients.GitHubApp()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.Queue()).Equal(mockQueue)
		gt.V(t, clients.ScanRepository()).Equal(mockRepo)
	})
}
