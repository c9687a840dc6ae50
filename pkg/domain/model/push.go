package model

import (
	"encoding/json"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

const branchRefPrefix = "refs/heads/"

type Commit struct {
	AuthorName string
	Message    string
}

// PushEvent is the part of a queued push notification that a conflict scan needs.
type PushEvent struct {
	Ref             string
	Before          string
	After           string
	Deleted         bool
	RepositoryOwner types.RepoOwner
	RepositoryName  types.RepoName
	PusherName      string
	Commits         []Commit
	InstallationID  types.GitHubAppInstallID
}

// ParsePushEvent decodes a queued GitHub push payload. Any decode or validation problem is
// reported as types.ErrParsePayload.
func ParsePushEvent(data []byte) (*PushEvent, error) {
	var ev github.PushEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, goerr.Wrap(types.ErrParsePayload, "invalid JSON", goerr.V("error", err.Error()))
	}

	owner := ev.GetRepo().GetOwner().GetName()
	if owner == "" {
		owner = ev.GetRepo().GetOwner().GetLogin()
	}

	push := &PushEvent{
		Ref:             ev.GetRef(),
		Before:          ev.GetBefore(),
		After:           ev.GetAfter(),
		Deleted:         ev.GetDeleted(),
		RepositoryOwner: types.RepoOwner(owner),
		RepositoryName:  types.RepoName(ev.GetRepo().GetName()),
		PusherName:      ev.GetPusher().GetName(),
		InstallationID:  types.GitHubAppInstallID(ev.GetInstallation().GetID()),
	}
	for _, c := range ev.Commits {
		push.Commits = append(push.Commits, Commit{
			AuthorName: c.GetAuthor().GetName(),
			Message:    c.GetMessage(),
		})
	}

	if err := push.Validate(); err != nil {
		return nil, err
	}

	return push, nil
}

func (x *PushEvent) Validate() error {
	if x.Ref == "" {
		return goerr.Wrap(types.ErrParsePayload, "ref is empty")
	}
	if x.RepositoryOwner == "" {
		return goerr.Wrap(types.ErrParsePayload, "repository owner is empty")
	}
	if x.RepositoryName == "" {
		return goerr.Wrap(types.ErrParsePayload, "repository name is empty")
	}
	if strings.ContainsAny(string(x.RepositoryName), `/\`) || x.RepositoryName == "." || x.RepositoryName == ".." {
		return goerr.Wrap(types.ErrParsePayload, "illegal repository name", goerr.V("name", x.RepositoryName))
	}
	return nil
}

// IsBranch reports whether the pushed ref is a branch head (not a tag or other ref).
func (x *PushEvent) IsBranch() bool {
	return strings.HasPrefix(x.Ref, branchRefPrefix) && len(x.Ref) > len(branchRefPrefix)
}

// SubjectBranch returns the pushed branch name without the refs/heads/ prefix.
func (x *PushEvent) SubjectBranch() types.BranchName {
	return types.BranchName(strings.TrimPrefix(x.Ref, branchRefPrefix))
}

// Authors returns commit author names in first-seen order without duplicates.
func (x *PushEvent) Authors() []string {
	seen := make(map[string]struct{})
	var authors []string
	for _, c := range x.Commits {
		if _, ok := seen[c.AuthorName]; ok {
			continue
		}
		seen[c.AuthorName] = struct{}{}
		authors = append(authors, c.AuthorName)
	}
	return authors
}
