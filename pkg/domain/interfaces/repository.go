package interfaces

import (
	"context"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

//go:generate moq -out ../mock/scan_repository_mock.go -pkg mock . ScanRepository

// ScanRepository keeps the history of conflict scans
type ScanRepository interface {
	PutScan(ctx context.Context, record *model.ScanRecord) error
	GetScan(ctx context.Context, owner types.RepoOwner, repo types.RepoName, id types.ScanID) (*model.ScanRecord, error)
	// ListScans returns the most recent scans of a repository, newest first.
	ListScans(ctx context.Context, owner types.RepoOwner, repo types.RepoName, limit int) ([]*model.ScanRecord, error)
}
