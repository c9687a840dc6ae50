package types

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrParsePayload means a queued record is not a usable push event. The record is dropped.
	ErrParsePayload = goerr.New("failed to parse push payload")

	// ErrCloneFailure means no local copy of the repository could be established.
	ErrCloneFailure = goerr.New("failed to clone repository")

	// ErrNotificationDelivery means the chat alert could not be delivered.
	ErrNotificationDelivery = goerr.New("failed to deliver notification")

	ErrLockWait = goerr.New("gave up waiting for repository lock")
)

// CommandFailure is returned by the version-control gateway when git exits with non-zero status.
type CommandFailure struct {
	Command    []string
	ExitStatus int
	Stdout     string
	Stderr     string
	Err        error
}

func (x *CommandFailure) Error() string {
	msg := fmt.Sprintf("git %s exited with status %d", strings.Join(x.Command, " "), x.ExitStatus)
	if stderr := strings.TrimSpace(x.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (x *CommandFailure) Unwrap() error {
	return x.Err
}
