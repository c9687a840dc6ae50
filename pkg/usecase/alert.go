package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/errutil"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

const (
	summaryMaxLen     = 30
	summaryKeepLen    = 29
	summaryEllipsis   = "..."
	summarySeparator  = ", "
	conflictSeparator = ", "
)

func composeAlert(settings model.Settings, ev *model.PushEvent, conflicts []types.BranchName) *model.Alert {
	names := make([]string, len(conflicts))
	for i, c := range conflicts {
		names[i] = string(c)
	}

	messages := make([]string, 0, len(ev.Commits))
	for _, c := range ev.Commits {
		messages = append(messages, c.Message)
	}

	mention := settings.MentionFor(ev.PusherName)
	return &model.Alert{
		Mention: mention,
		Text: fmt.Sprintf(`%s Branch "%s" is conflicting with the following branches: "%s"`,
			mention, ev.SubjectBranch(), strings.Join(names, conflictSeparator)),
		Authors:       ev.Authors(),
		CommitSummary: truncateSummary(strings.Join(messages, summarySeparator)),
	}
}

// truncateSummary keeps summaries of up to summaryMaxLen characters and cuts longer ones to
// summaryKeepLen characters followed by an ellipsis.
func truncateSummary(s string) string {
	if utf8.RuneCountInString(s) <= summaryMaxLen {
		return s
	}
	return string([]rune(s)[:summaryKeepLen]) + summaryEllipsis
}

// notify sends alert to the chat room. Delivery failures are reported and swallowed; the
// return value tells whether the alert was delivered.
func (x *UseCase) notify(ctx context.Context, alert *model.Alert) bool {
	logger := logging.From(ctx)
	logger.Info("sending conflict alert",
		"text", alert.Text,
		"authors", alert.Authors,
		"commits", alert.CommitSummary,
	)

	chat := x.clients.Chat()
	if chat == nil {
		logger.Warn("chat client is not configured, alert is not delivered")
		return false
	}

	if err := chat.SendMessage(ctx, &interfaces.ChatMessage{
		RoomID:     x.settings.ChatRoomID,
		SenderName: x.settings.ChatSenderName,
		Text:       alert.Text,
		Notify:     true,
		Color:      interfaces.ChatColorRed,
		Format:     interfaces.ChatFormatText,
	}); err != nil {
		errutil.HandleError(ctx, "failed to send alert", goerr.Wrap(types.ErrNotificationDelivery, "chat delivery failed",
			goerr.V("room", x.settings.ChatRoomID),
			goerr.V("error", err.Error()),
		))
		return false
	}

	return true
}
