package model

import (
	"strings"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

// BranchRef is a remote-tracking branch split from a "remote/branch" short ref.
type BranchRef struct {
	Remote string
	Name   types.BranchName
}

// ParseBranchRef splits a short ref on its first "/". Branch names may contain further slashes.
func ParseBranchRef(short string) BranchRef {
	remote, name, _ := strings.Cut(strings.TrimSpace(short), "/")
	return BranchRef{Remote: remote, Name: types.BranchName(name)}
}

// TrackingRef returns "remote/branch".
func (x BranchRef) TrackingRef() string {
	return x.Remote + "/" + string(x.Name)
}
