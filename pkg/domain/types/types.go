package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	RepoOwner  string
	RepoName   string
	BranchName string

	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubWebhookSecret string

	ChatRoomID string
	ChatToken  string

	RequestID string
	ScanID    string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func NewRequestID() RequestID { return RequestID(uuid.NewString()) }
func NewScanID() ScanID       { return ScanID(uuid.NewString()) }

func (x RepoOwner) String() string       { return string(x) }
func (x RepoName) String() string        { return string(x) }
func (x BranchName) String() string      { return string(x) }
func (x ScanID) String() string          { return string(x) }
func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func (x ChatToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x ChatToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubWebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubWebhookSecret) String() string {
	return "***********"
}
