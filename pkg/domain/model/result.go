package model

import "github.com/Cielo24/git-conflict-detector/pkg/domain/types"

type MergeOutcome int

const (
	MergeClean MergeOutcome = iota
	MergeConflict
	MergeInfraError
)

func (x MergeOutcome) String() string {
	switch x {
	case MergeClean:
		return "clean"
	case MergeConflict:
		return "conflict"
	case MergeInfraError:
		return "infra_error"
	default:
		return "unknown"
	}
}

type SkippedBranch struct {
	Name   types.BranchName `json:"name" firestore:"name" bigquery:"name"`
	Reason string           `json:"reason" firestore:"reason" bigquery:"reason"`
}

// ScanResult accumulates the outcome of one scan. Conflicts keeps candidate order.
type ScanResult struct {
	Conflicts []types.BranchName
	Skipped   []SkippedBranch
	Checked   int
}

func (x *ScanResult) AddConflict(name types.BranchName) {
	x.Conflicts = append(x.Conflicts, name)
}

func (x *ScanResult) AddSkipped(name types.BranchName, reason string) {
	x.Skipped = append(x.Skipped, SkippedBranch{Name: name, Reason: reason})
}

func (x *ScanResult) HasConflicts() bool {
	return len(x.Conflicts) > 0
}
