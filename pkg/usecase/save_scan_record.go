package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/errutil"
)

// saveScanRecord writes the record to the history store and BigQuery when they are configured.
// Failures are reported and never change the outcome of the scan.
func (x *UseCase) saveScanRecord(ctx context.Context, record *model.ScanRecord) {
	if repo := x.clients.ScanRepository(); repo != nil {
		if err := repo.PutScan(ctx, record); err != nil {
			errutil.HandleError(ctx, "failed to save scan history", goerr.Wrap(err, "failed to put scan", goerr.V("id", record.ID)))
		}
	}

	if bq := x.clients.BigQuery(); bq != nil {
		if err := insertScanRecord(ctx, bq, record); err != nil {
			errutil.HandleError(ctx, "failed to export scan record", err)
		}
	}
}

func insertScanRecord(ctx context.Context, bq interfaces.BigQuery, record *model.ScanRecord) error {
	if err := createOrUpdateBigQueryTable(ctx, bq, record); err != nil {
		return err
	}
	if err := bq.Insert(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to insert scan record to BigQuery", goerr.V("id", record.ID))
	}
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.ScanRecord) error {
	schema, err := bqs.Infer(record)
	if err != nil {
		return goerr.Wrap(err, "failed to infer scan record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return goerr.Wrap(err, "failed to create BigQuery table")
		}
		return nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return goerr.Wrap(err, "failed to update BigQuery table")
	}

	return nil
}
