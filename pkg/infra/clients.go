package infra

import (
	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/infra/git"
)

type Clients struct {
	git            interfaces.Git
	chat           interfaces.Chat
	queue          interfaces.Queue
	githubApp      interfaces.GitHubApp
	bqClient       interfaces.BigQuery
	scanRepository interfaces.ScanRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		git: git.New("git"),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) Chat() interfaces.Chat {
	return x.chat
}
func (x *Clients) Queue() interfaces.Queue {
	return x.queue
}
func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) ScanRepository() interfaces.ScanRepository {
	return x.scanRepository
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithChat(client interfaces.Chat) Option {
	return func(x *Clients) {
		x.chat = client
	}
}

func WithQueue(queue interfaces.Queue) Option {
	return func(x *Clients) {
		x.queue = queue
	}
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithScanRepository(repo interfaces.ScanRepository) Option {
	return func(x *Clients) {
		x.scanRepository = repo
	}
}
