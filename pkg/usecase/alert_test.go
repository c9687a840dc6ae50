package usecase_test

import (
	"testing"
	"unicode/utf8"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/usecase"
)

func TestTruncateSummary(t *testing.T) {
	testCases := map[string]struct {
		input  string
		expect string
	}{
		"short summary is kept": {
			input:  "Fix typo",
			expect: "Fix typo",
		},
		"exactly 30 characters is kept": {
			input:  "123456789012345678901234567890",
			expect: "123456789012345678901234567890",
		},
		"31 characters is cut to 29 with ellipsis": {
			input:  "1234567890123456789012345678901",
			expect: "12345678901234567890123456789...",
		},
		"multibyte summary is cut by character": {
			input:  "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほま",
			expect: "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへ...",
		},
		"30 multibyte characters is kept": {
			input:  "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほ",
			expect: "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほ",
		},
		"empty": {
			input:  "",
			expect: "",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := usecase.TruncateSummaryForTest(tc.input)
			gt.V(t, got).Equal(tc.expect)
			gt.True(t, utf8.ValidString(got))
		})
	}
}

func TestComposeAlert(t *testing.T) {
	settings := model.Settings{
		MentionMap: map[string]string{"alice": "AliceH"},
	}
	ev := &model.PushEvent{
		Ref:        "refs/heads/feature/login",
		PusherName: "alice",
		Commits: []model.Commit{
			{AuthorName: "Alice", Message: "Rewrite login form"},
			{AuthorName: "Bob", Message: "Tweak styles"},
			{AuthorName: "Alice", Message: "Fix typo"},
		},
	}

	alert := usecase.ComposeAlertForTest(settings, ev, []types.BranchName{"release-1", "release/2"})
	gt.V(t, alert.Mention).Equal("@AliceH")
	gt.V(t, alert.Text).Equal(`@AliceH Branch "feature/login" is conflicting with the following branches: "release-1, release/2"`)
	gt.V(t, alert.Authors).Equal([]string{"Alice", "Bob"})
	gt.V(t, alert.CommitSummary).Equal("Rewrite login form, Tweak sty...")

	t.Run("unmapped pusher mentions everyone", func(t *testing.T) {
		ev := *ev
		ev.PusherName = "carol"
		alert := usecase.ComposeAlertForTest(settings, &ev, []types.BranchName{"develop"})
		gt.V(t, alert.Text).Equal(`@all Branch "feature/login" is conflicting with the following branches: "develop"`)
	})
}
