package coverage

import (
	"context"
	"time"
)

// Repository derives coverage records from the leave and regularization
// tables. There is no cache table: coverage is recomputed from source on
// every call, so it can never go stale.
type Repository interface {
	// ListForRange returns surviving coverage (rejected leave and cancelled
	// regularizations excluded) for the given employees, one record per
	// covered day, clamped to [start, end] inclusive.
	ListForRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Record, error)
}
