package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

func validSettings() model.Settings {
	return model.Settings{
		ChatRoomID:     "12345",
		ChatToken:      "token",
		ChatSenderName: "Conflicts",
		IgnoreBranches: []types.BranchName{"master", "develop"},
		MentionMap:     map[string]string{"alice": "AliceH", "bob": ""},
	}
}

func TestSettingsValidate(t *testing.T) {
	gt.NoError(t, validSettings().Validate())

	testCases := map[string]func(*model.Settings){
		"no room":          func(s *model.Settings) { s.ChatRoomID = "" },
		"no token":         func(s *model.Settings) { s.ChatToken = "" },
		"no sender":        func(s *model.Settings) { s.ChatSenderName = "" },
		"negative maximum": func(s *model.Settings) { s.MaxBranches = -1 },
	}
	for name, mutate := range testCases {
		t.Run(name, func(t *testing.T) {
			s := validSettings()
			mutate(&s)
			err := s.Validate()
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}
}

func TestSettingsMentionFor(t *testing.T) {
	s := validSettings()
	gt.V(t, s.MentionFor("alice")).Equal("@AliceH")
	gt.V(t, s.MentionFor("carol")).Equal(model.BroadcastMention)
	// an empty handle falls back to the broadcast mention
	gt.V(t, s.MentionFor("bob")).Equal(model.BroadcastMention)
}

func TestSettingsDefaults(t *testing.T) {
	s := validSettings()
	gt.V(t, s.MaxCandidates()).Equal(model.DefaultMaxBranches)
	gt.V(t, s.RemoteName()).Equal(model.DefaultRemote)

	s.MaxBranches = 5
	s.Remote = "upstream"
	gt.V(t, s.MaxCandidates()).Equal(5)
	gt.V(t, s.RemoteName()).Equal("upstream")

	set := s.IgnoreSet()
	gt.V(t, len(set)).Equal(2)
	_, ok := set["develop"]
	gt.True(t, ok)
}

func TestParseBranchRef(t *testing.T) {
	ref := model.ParseBranchRef("origin/feature/login\n")
	gt.V(t, ref.Remote).Equal("origin")
	gt.V(t, ref.Name).Equal(types.BranchName("feature/login"))
	gt.V(t, ref.TrackingRef()).Equal("origin/feature/login")

	gt.V(t, model.ParseBranchRef("origin").Name).Equal(types.BranchName(""))
	gt.V(t, model.ParseBranchRef("").Name).Equal(types.BranchName(""))
}

func TestRepositoryHandle(t *testing.T) {
	h := model.NewRepositoryHandle(".cache", "Cielo24", "web", "git@github.com:Cielo24/web.git")
	gt.V(t, h.Path).Equal(".cache/web")
	gt.V(t, h.LockKey()).Equal("web")
}
