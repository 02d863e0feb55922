package interfaces

import (
	"context"

	"github.com/breweryteam/releasehook/pkg/domain/model"
)

// Ledger remembers which releases have already been announced
type Ledger interface {
	Announced(ctx context.Context, release model.Release) (bool, error)
	Record(ctx context.Context, record *model.ReleaseRecord) error
	List(ctx context.Context, limit int) ([]*model.ReleaseRecord, error)
	Close() error
}
