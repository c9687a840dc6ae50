package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Cielo24/git-conflict-detector/pkg/domain/types"
)

func TestScanIDString(t *testing.T) {
	id := types.NewScanID()
	gt.V(t, id.String()).Equal(string(id))
	gt.V(t, id.String()).NotEqual("")
}
