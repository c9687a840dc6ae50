package model

import (
	"time"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

type ScanStatus string

const (
	ScanStatusClean    ScanStatus = "clean"
	ScanStatusConflict ScanStatus = "conflict"
	ScanStatusAborted  ScanStatus = "aborted"
)

// ScanRecord is the persisted summary of one scan, kept in the history store and exported to BigQuery.
type ScanRecord struct {
	ID         types.ScanID     `json:"id" firestore:"id" bigquery:"id"`
	Owner      types.RepoOwner  `json:"owner" firestore:"owner" bigquery:"owner"`
	Repository types.RepoName   `json:"repository" firestore:"repository" bigquery:"repository"`
	Branch     types.BranchName `json:"branch" firestore:"branch" bigquery:"branch"`
	Pusher     string           `json:"pusher" firestore:"pusher" bigquery:"pusher"`
	After      string           `json:"after" firestore:"after" bigquery:"after"`
	Status     ScanStatus       `json:"status" firestore:"status" bigquery:"status"`
	Conflicts  []string         `json:"conflicts" firestore:"conflicts" bigquery:"conflicts"`
	Skipped    []SkippedBranch  `json:"skipped" firestore:"skipped" bigquery:"skipped"`
	Checked    int              `json:"checked" firestore:"checked" bigquery:"checked"`
	Notified   bool             `json:"notified" firestore:"notified" bigquery:"notified"`
	StartedAt  time.Time        `json:"started_at" firestore:"started_at" bigquery:"started_at"`
	FinishedAt time.Time        `json:"finished_at" firestore:"finished_at" bigquery:"finished_at"`
}

func NewScanRecord(ev *PushEvent, result *ScanResult, startedAt, finishedAt time.Time) *ScanRecord {
	record := &ScanRecord{
		ID:         types.NewScanID(),
		Owner:      ev.RepositoryOwner,
		Repository: ev.RepositoryName,
		Branch:     ev.SubjectBranch(),
		Pusher:     ev.PusherName,
		After:      ev.After,
		Status:     ScanStatusClean,
		Conflicts:  []string{},
		Skipped:    []SkippedBranch{},
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}
	if result == nil {
		record.Status = ScanStatusAborted
		return record
	}

	record.Checked = result.Checked
	record.Skipped = append(record.Skipped, result.Skipped...)
	for _, c := range result.Conflicts {
		record.Conflicts = append(record.Conflicts, string(c))
	}
	if result.HasConflicts() {
		record.Status = ScanStatusConflict
	}
	return record
}
