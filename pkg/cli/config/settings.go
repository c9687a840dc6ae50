package config

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/vaughan0/go-ini"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/infra/hipchat"
)

const (
	sectionHipChat  = "hipchat"
	sectionGit      = "git"
	sectionMentions = "git_to_hipchat_name"
)

// Settings loads chat and branch selection settings from an INI file:
//
//	[hipchat]
//	room_id = 12345
//	token = ...
//	name = Conflict Detector
//	url = https://api.hipchat.com
//
//	[git]
//	ignore_branches = master, develop
//	maximum_branches_to_check = 100    (at least 1; omit for 1000)
//	baseline_branch = develop
//	remote = origin
//
//	[git_to_hipchat_name]
//	Alice Smith = alice
type Settings struct {
	path        string
	chatTimeout time.Duration
}

func (x *Settings) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "settings",
			Usage:       "Path to settings INI file",
			Category:    "Settings",
			Value:       "settings.ini",
			Sources:     cli.EnvVars("GCD_SETTINGS"),
			Destination: &x.path,
		},
		&cli.DurationFlag{
			Name:        "chat-timeout",
			Usage:       "Timeout of a single chat notification request",
			Category:    "Settings",
			Value:       hipchat.DefaultTimeout,
			Sources:     cli.EnvVars("GCD_CHAT_TIMEOUT"),
			Destination: &x.chatTimeout,
		},
	}
}

func (x *Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.Duration("chat_timeout", x.chatTimeout),
	)
}

// Load reads and validates the settings file.
func (x *Settings) Load() (model.Settings, error) {
	fd, err := os.Open(x.path)
	if err != nil {
		return model.Settings{}, goerr.Wrap(err, "failed to open settings file", goerr.V("path", x.path))
	}
	defer fd.Close()

	settings, err := ParseSettings(fd)
	if err != nil {
		return model.Settings{}, goerr.Wrap(err, "invalid settings file", goerr.V("path", x.path))
	}
	return settings, nil
}

// ParseSettings decodes settings from INI data and validates them.
func ParseSettings(r io.Reader) (model.Settings, error) {
	file, err := ini.Load(r)
	if err != nil {
		return model.Settings{}, goerr.Wrap(types.ErrInvalidOption, "failed to parse settings", goerr.V("error", err.Error()))
	}

	settings := model.Settings{
		ChatURL:        model.DefaultChatURL,
		MaxBranches:    model.DefaultMaxBranches,
		Remote:         model.DefaultRemote,
		IgnoreBranches: []types.BranchName{},
		MentionMap:     map[string]string{},
	}

	if v, ok := file.Get(sectionHipChat, "room_id"); ok {
		settings.ChatRoomID = types.ChatRoomID(v)
	}
	if v, ok := file.Get(sectionHipChat, "token"); ok {
		settings.ChatToken = types.ChatToken(v)
	}
	if v, ok := file.Get(sectionHipChat, "name"); ok {
		settings.ChatSenderName = v
	}
	if v, ok := file.Get(sectionHipChat, "url"); ok && v != "" {
		settings.ChatURL = strings.TrimRight(v, "/")
	}

	if v, ok := file.Get(sectionGit, "ignore_branches"); ok {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				settings.IgnoreBranches = append(settings.IgnoreBranches, types.BranchName(name))
			}
		}
	}
	if v, ok := file.Get(sectionGit, "maximum_branches_to_check"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return model.Settings{}, goerr.Wrap(types.ErrInvalidOption, "git.maximum_branches_to_check must be a number", goerr.V("value", v))
		}
		// Omit the key for the default; an explicit 0 would check nothing
		if n < 1 {
			return model.Settings{}, goerr.Wrap(types.ErrInvalidOption, "git.maximum_branches_to_check must be at least 1", goerr.V("value", n))
		}
		settings.MaxBranches = n
	}
	if v, ok := file.Get(sectionGit, "baseline_branch"); ok {
		settings.BaselineBranch = strings.TrimSpace(v)
	}
	if v, ok := file.Get(sectionGit, "remote"); ok && strings.TrimSpace(v) != "" {
		settings.Remote = strings.TrimSpace(v)
	}

	for author, handle := range file.Section(sectionMentions) {
		settings.MentionMap[author] = strings.TrimPrefix(handle, "@")
	}

	if err := settings.Validate(); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

// NewChat creates the chat client that delivers alerts for settings.
func (x *Settings) NewChat(settings model.Settings) (*hipchat.Client, error) {
	timeout := x.chatTimeout
	if timeout <= 0 {
		timeout = hipchat.DefaultTimeout
	}
	return hipchat.New(settings.ChatURL, settings.ChatToken,
		hipchat.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
}
