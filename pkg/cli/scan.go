package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/logging"
)

func scanCommand() *cli.Command {
	var (
		dir      string
		checkout Checkout
		det      detector
	)

	scanFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "Local clone used to detect --owner, --repo, --branch and --pusher when omitted",
			Value:       ".",
			Destination: &dir,
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner",
			Sources:     cli.EnvVars("GCD_SCAN_OWNER"),
			Destination: (*string)(&checkout.Owner),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Sources:     cli.EnvVars("GCD_SCAN_REPO"),
			Destination: (*string)(&checkout.Name),
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Subject branch to check against every other branch",
			Sources:     cli.EnvVars("GCD_SCAN_BRANCH"),
			Destination: (*string)(&checkout.Branch),
		},
		&cli.StringFlag{
			Name:        "pusher",
			Usage:       "Name used to pick the chat mention",
			Sources:     cli.EnvVars("GCD_SCAN_PUSHER"),
			Destination: &checkout.Pusher,
		},
	}

	return &cli.Command{
		Name:  "scan",
		Usage: "Scan one branch for conflicts right away, without the queue",
		Flags: slice.Flatten(scanFlags, det.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if checkout.Owner == "" || checkout.Name == "" || checkout.Branch == "" {
				if err := DetectCheckout(dir, model.DefaultRemote, &checkout); err != nil {
					return goerr.Wrap(err, "failed to detect repository, specify --owner, --repo and --branch")
				}
			}

			logging.Default().Info("starting scan",
				slog.Any("Owner", checkout.Owner),
				slog.Any("Repo", checkout.Name),
				slog.Any("Branch", checkout.Branch),
				slog.Any("Pusher", checkout.Pusher),
				slog.Any("Detector", &det),
			)

			uc, err := det.build(ctx, nil)
			if err != nil {
				return err
			}

			ev := &model.PushEvent{
				Ref:             "refs/heads/" + string(checkout.Branch),
				RepositoryOwner: checkout.Owner,
				RepositoryName:  checkout.Name,
				PusherName:      checkout.Pusher,
			}
			result, err := uc.DetectConflicts(logging.With(ctx, logging.Default()), ev)
			if err != nil {
				return err
			}

			return printScanResult(os.Stdout, checkout.Branch, result)
		},
	}
}

type scanOutput struct {
	Branch    types.BranchName      `json:"branch"`
	Checked   int                   `json:"checked"`
	Conflicts []types.BranchName    `json:"conflicts"`
	Skipped   []model.SkippedBranch `json:"skipped"`
}

func printScanResult(w io.Writer, branch types.BranchName, result *model.ScanResult) error {
	out := scanOutput{
		Branch:    branch,
		Conflicts: []types.BranchName{},
		Skipped:   []model.SkippedBranch{},
	}
	if result != nil {
		out.Checked = result.Checked
		out.Conflicts = append(out.Conflicts, result.Conflicts...)
		out.Skipped = append(out.Skipped, result.Skipped...)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return goerr.Wrap(err, "failed to write scan result")
	}
	return nil
}
