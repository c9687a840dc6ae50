package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
)

type UseCase interface {
	EnqueuePushEvent(ctx context.Context, payload []byte) (string, error)
	ProcessQueue(ctx context.Context) (*model.QueueReport, error)
	DetectConflicts(ctx context.Context, ev *model.PushEvent) (*model.ScanResult, error)
}
