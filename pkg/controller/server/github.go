package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/errutil"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

const (
	eventPing = "ping"
	eventPush = "push"
)

// handleGitHubWebhook queues push payloads for the worker. The payload may come as a JSON body or
// as the "payload" field of a form, as GitHub sends it depending on the hook's content type.
func handleGitHubWebhook(w http.ResponseWriter, r *http.Request, uc interfaces.UseCase, cfg *config) {
	ctx := r.Context()

	payload, err := github.ValidatePayload(r, []byte(cfg.ghSecret))
	if err != nil {
		errutil.HandleError(ctx, "fail to validate GitHub webhook", goerr.Wrap(err, "validating payload"))
		safeWrite(w, http.StatusBadRequest, []byte(`{"status":"error","message":"invalid payload"}`))
		return
	}

	eventType := github.WebHookType(r)
	logger := logging.From(ctx).With(
		slog.String("event", eventType),
		slog.String("delivery", github.DeliveryID(r)),
	)

	switch eventType {
	case eventPing:
		logger.Info("Received GitHub ping")
		safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"pong"}`))

	case eventPush:
		name, err := uc.EnqueuePushEvent(ctx, payload)
		if err != nil {
			if errors.Is(err, types.ErrParsePayload) {
				logger.Warn("Rejected push payload", slog.Any("error", err))
				safeWrite(w, http.StatusBadRequest, []byte(`{"status":"error","message":"invalid push payload"}`))
				return
			}
			errutil.HandleError(ctx, "fail to queue push event", err)
			safeWrite(w, http.StatusInternalServerError, []byte(`{"status":"error","message":"failed to queue"}`))
			return
		}

		logger.Info("Request queued", slog.String("name", name))
		if cfg.notify != nil {
			cfg.notify()
		}
		safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"request queued"}`))

	default:
		logger.Debug("ignore unsupported event")
		safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"event ignored"}`))
	}
}
