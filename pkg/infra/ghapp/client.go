package ghapp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

type Client struct {
	appID types.GitHubAppID
	pem   types.GitHubAppPrivateKey
}

var _ interfaces.GitHubApp = (*Client)(nil)

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID: appID,
		pem:   pem,
	}

	return client, nil
}

func (x *Client) buildInstallationTransport(installID types.GitHubAppInstallID) (*ghinstallation.Transport, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create installation transport", goerr.V("installID", installID))
	}
	return itr, nil
}

// InstallationToken returns an installation access token. The token is used as the password for
// HTTPS git access with the "x-access-token" user.
func (x *Client) InstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (string, error) {
	if installID == 0 {
		return "", goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}

	itr, err := x.buildInstallationTransport(installID)
	if err != nil {
		return "", err
	}

	token, err := itr.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get installation token", goerr.V("installID", installID))
	}

	logging.From(ctx).Debug("Issued installation token",
		slog.Any("appID", x.appID),
		slog.Any("installID", installID),
	)

	return token, nil
}
