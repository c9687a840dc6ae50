package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/cli/config"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

func historyCommand() *cli.Command {
	var (
		owner     types.RepoOwner
		repo      types.RepoName
		limit     int64
		firestore config.Firestore
	)

	historyFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner",
			Required:    true,
			Destination: (*string)(&owner),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Required:    true,
			Destination: (*string)(&repo),
		},
		&cli.Int64Flag{
			Name:        "limit",
			Usage:       "Maximum number of scans to show",
			Value:       20,
			Destination: &limit,
		},
	}

	return &cli.Command{
		Name:  "history",
		Usage: "Show recent scans of a repository, newest first",
		Flags: slice.Flatten(historyFlags, firestore.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireFirestore(&firestore); err != nil {
				return err
			}
			scanRepo, err := firestore.NewRepository(ctx)
			if err != nil {
				return err
			}
			return printHistory(ctx, os.Stdout, scanRepo, owner, repo, int(limit))
		},
	}
}

// printHistory writes one JSON document per scan.
func printHistory(ctx context.Context, w io.Writer, repo interfaces.ScanRepository, owner types.RepoOwner, name types.RepoName, limit int) error {
	records, err := repo.ListScans(ctx, owner, name, limit)
	if err != nil {
		return goerr.Wrap(err, "failed to list scans", goerr.V("owner", owner), goerr.V("repo", name))
	}

	enc := json.NewEncoder(w)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return goerr.Wrap(err, "failed to write scan record")
		}
	}
	return nil
}
