package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

const (
	DefaultMaxBranches = 1000
	DefaultRemote      = "origin"
	DefaultChatURL     = "https://api.hipchat.com"
	BroadcastMention   = "@all"
)

// Settings is loaded once per run and passed by value; nothing mutates it during a scan.
type Settings struct {
	ChatURL        string
	ChatRoomID     types.ChatRoomID
	ChatToken      types.ChatToken `masq:"secret"`
	ChatSenderName string

	IgnoreBranches []types.BranchName
	MaxBranches    int
	BaselineBranch string
	Remote         string

	// MentionMap maps a VCS author name to a chat handle without the leading "@".
	MentionMap map[string]string
}

func (x Settings) Validate() error {
	if x.ChatRoomID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "hipchat.room_id is required")
	}
	if x.ChatToken == "" {
		return goerr.Wrap(types.ErrInvalidOption, "hipchat.token is required")
	}
	if x.ChatSenderName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "hipchat.name is required")
	}
	if x.MaxBranches < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "git.maximum_branches_to_check must not be negative", goerr.V("value", x.MaxBranches))
	}
	return nil
}

// MaxCandidates returns the configured candidate limit. Zero means unset and falls back to
// DefaultMaxBranches; a settings file never yields zero because ParseSettings rejects it.
func (x Settings) MaxCandidates() int {
	if x.MaxBranches <= 0 {
		return DefaultMaxBranches
	}
	return x.MaxBranches
}

func (x Settings) RemoteName() string {
	if x.Remote == "" {
		return DefaultRemote
	}
	return x.Remote
}

func (x Settings) IgnoreSet() map[types.BranchName]struct{} {
	set := make(map[types.BranchName]struct{}, len(x.IgnoreBranches))
	for _, b := range x.IgnoreBranches {
		set[b] = struct{}{}
	}
	return set
}

// MentionFor returns the chat mention for a pusher, or the broadcast mention if unmapped.
func (x Settings) MentionFor(pusher string) string {
	if handle, ok := x.MentionMap[pusher]; ok && handle != "" {
		return "@" + handle
	}
	return BroadcastMention
}

func (x Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("chat_url", x.ChatURL),
		slog.Any("room_id", x.ChatRoomID),
		slog.Any("token", x.ChatToken),
		slog.String("sender", x.ChatSenderName),
		slog.Any("ignore_branches", x.IgnoreBranches),
		slog.Int("max_branches", x.MaxCandidates()),
		slog.String("baseline_branch", x.BaselineBranch),
		slog.String("remote", x.RemoteName()),
		slog.Int("mentions", len(x.MentionMap)),
	)
}
