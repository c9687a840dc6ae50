package memory

import (
	"github.com/Cielo24/git-conflict-detector/pkg/domain/interfaces"
	"github.com/Cielo24/git-conflict-detector/pkg/domain/model"
)

var _ interfaces.ScanRepository = (*scanRepository)(nil)

// New returns a scan history store that lives as long as the process. Used when no Firestore
// project is configured, and in tests.
func New() interfaces.ScanRepository {
	return &scanRepository{
		repos: make(map[string]map[string]*model.ScanRecord),
	}
}
