package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Git Chat Queue BigQuery GitHubApp

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

// GitCommand is one git invocation. Args never pass through a shell.
type GitCommand struct {
	Dir  string
	Args []string
	// Env is appended to the process environment and is not logged.
	Env []string
}

// Git runs git subcommands. A non-zero exit is returned as *types.CommandFailure.
type Git interface {
	Run(ctx context.Context, cmd *GitCommand) (string, error)
}

type ChatColor string

const (
	ChatColorYellow ChatColor = "yellow"
	ChatColorGreen  ChatColor = "green"
	ChatColorRed    ChatColor = "red"
	ChatColorPurple ChatColor = "purple"
	ChatColorGray   ChatColor = "gray"
)

type ChatFormat string

const (
	ChatFormatText ChatFormat = "text"
	ChatFormatHTML ChatFormat = "html"
)

type ChatMessage struct {
	RoomID     types.ChatRoomID
	SenderName string
	Text       string
	Notify     bool
	Color      ChatColor
	Format     ChatFormat
}

type Chat interface {
	SendMessage(ctx context.Context, msg *ChatMessage) error
}

// Queue is a durable store of raw push payloads waiting to be scanned.
type Queue interface {
	// List returns record names in lexical (arrival) order.
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
	Put(ctx context.Context, name string, data []byte) error
}

type BigQuery interface {
	Insert(ctx context.Context, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

type GitHubApp interface {
	// InstallationToken returns a short-lived token usable for HTTPS git access.
	InstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (string, error)
}
