package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
	"github.com/Cielo24/git-conflict-detector/pkg/repository"
)

const (
	collectionRepo = "repo"
	collectionScan = "scan"
	fieldStartedAt = "started_at"
)

type scanRepository struct {
	client *firestore.Client
}

// ToFirestoreID converts owner and repo to a Firestore-safe document ID
// Uses colon (:) as separator since GitHub owner names cannot contain colons
func ToFirestoreID(owner, repo string) (string, error) {
	if owner == "" || repo == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(repo, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return owner + ":" + repo, nil
}

func (r *scanRepository) scans(owner types.RepoOwner, repo types.RepoName) (*firestore.CollectionRef, error) {
	firestoreID, err := ToFirestoreID(string(owner), string(repo))
	if err != nil {
		return nil, err
	}
	return r.client.Collection(collectionRepo).Doc(firestoreID).Collection(collectionScan), nil
}

func (r *scanRepository) PutScan(ctx context.Context, record *model.ScanRecord) error {
	if record == nil || record.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "scan record has no ID")
	}

	col, err := r.scans(record.Owner, record.Repository)
	if err != nil {
		return err
	}

	if _, err := col.Doc(record.ID.String()).Set(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to put scan",
			goerr.V("owner", record.Owner),
			goerr.V("repo", record.Repository),
			goerr.V("id", record.ID),
		)
	}

	return nil
}

func (r *scanRepository) GetScan(ctx context.Context, owner types.RepoOwner, repo types.RepoName, id types.ScanID) (*model.ScanRecord, error) {
	col, err := r.scans(owner, repo)
	if err != nil {
		return nil, err
	}

	snap, err := col.Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "scan not found",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("id", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get scan",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("id", id),
		)
	}

	var record model.ScanRecord
	if err := snap.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode scan", goerr.V("id", id))
	}

	return &record, nil
}

func (r *scanRepository) ListScans(ctx context.Context, owner types.RepoOwner, repo types.RepoName, limit int) ([]*model.ScanRecord, error) {
	col, err := r.scans(owner, repo)
	if err != nil {
		return nil, err
	}

	query := col.OrderBy(fieldStartedAt, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*model.ScanRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate scans",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
			)
		}

		var record model.ScanRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode scan", goerr.V("docID", doc.Ref.ID))
		}
		records = append(records, &record)
	}

	return records, nil
}
