package reconciliation

import (
	"context"
)

// Service runs the attendance reconciliation batch: raw "Absent"
// observations are cross-referenced against surviving leave and
// regularization coverage and rewritten to their justified status, or left
// standing as unapproved absences.
type Service interface {
	Reconcile(ctx context.Context, req Request) (Summary, error)
}
