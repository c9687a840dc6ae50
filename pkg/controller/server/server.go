package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret types.GitHubWebhookSecret
	notify   func()
}

type Option func(*config)

// WithGitHubSecret enables signature validation of webhook requests.
func WithGitHubSecret(secret types.GitHubWebhookSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithQueueNotifier sets a func called after a push event has been queued, e.g. to wake a worker.
// It must not block.
func WithQueueNotifier(notify func()) Option {
	return func(cfg *config) {
		cfg.notify = notify
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
			handleGitHubWebhook(w, r, uc, cfg)
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
