package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/repository/firestore"
	"github.com/Cielo24/git-conflict-detector/pkg/repository/memory"
)

// Firestore configures the scan history store. Without a project ID history is kept in memory
// for the lifetime of the process.
type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID for scan history (optional)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("GCD_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("GCD_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

func (x *Firestore) NewRepository(ctx context.Context) (interfaces.ScanRepository, error) {
	if !x.Enabled() {
		return memory.New(), nil
	}
	return firestore.New(ctx, x.projectID, x.databaseID)
}
