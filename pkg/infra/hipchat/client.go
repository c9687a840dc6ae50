package hipchat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/safe"
)

// DefaultTimeout bounds a single notification request when no HTTP client is given.
const DefaultTimeout = 30 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends room notifications through the HipChat v2 REST API.
type Client struct {
	baseURL    string
	token      types.ChatToken
	httpClient HTTPClient
}

var _ interfaces.Chat = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(baseURL string, token types.ChatToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "chat token is empty")
	}
	if _, err := url.Parse(baseURL); err != nil || baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid chat URL", goerr.V("url", baseURL))
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

type notification struct {
	From          string `json:"from,omitempty"`
	Message       string `json:"message"`
	Notify        bool   `json:"notify"`
	Color         string `json:"color,omitempty"`
	MessageFormat string `json:"message_format,omitempty"`
}

func (x *Client) SendMessage(ctx context.Context, msg *interfaces.ChatMessage) error {
	body, err := json.Marshal(notification{
		From:          msg.SenderName,
		Message:       msg.Text,
		Notify:        msg.Notify,
		Color:         string(msg.Color),
		MessageFormat: string(msg.Format),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to marshal notification")
	}

	endpoint := x.baseURL + "/v2/room/" + url.PathEscape(string(msg.RoomID)) + "/notification"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create notification request", goerr.V("url", endpoint))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+string(x.token))

	logging.From(ctx).Debug("Sending chat notification", slog.String("url", endpoint), slog.Any("room", msg.RoomID))

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send notification", goerr.V("url", endpoint))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.New("chat API returned error status",
			goerr.V("url", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	return nil
}
