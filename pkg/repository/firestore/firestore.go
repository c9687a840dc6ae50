package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
)

var _ interfaces.ScanRepository = (*scanRepository)(nil)

// New connects to the scan history store. Records live under
// repo/<owner:name>/scan/<scan ID>. An empty databaseID selects the default database.
func New(ctx context.Context, projectID, databaseID string) (interfaces.ScanRepository, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &scanRepository{client: client}, nil
}
