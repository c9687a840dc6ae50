package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/repository/firestore"
	"github.com/Cielo24/git-conflict-detector/pkg/repository/testhelper"
	"github.com/Cielo24/git-conflict-detector/pkg/utils/testutil"
)

func TestFirestoreScanRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	repo := gt.R1(firestore.New(context.Background(), projectID, databaseID)).NoError(t)
	testhelper.TestAll(t, repo)
}

func TestToFirestoreID(t *testing.T) {
	id, err := firestore.ToFirestoreID("Cielo24", "web")
	gt.NoError(t, err)
	gt.V(t, id).Equal("Cielo24:web")

	id, err = firestore.ToFirestoreID("my-org", "my.repo")
	gt.NoError(t, err)
	gt.V(t, id).Equal("my-org:my.repo")

	_, err = firestore.ToFirestoreID("", "web")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("Cielo24", "")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("Cielo:24", "web")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("Cielo24", "web:1")
	gt.Error(t, err)
}
