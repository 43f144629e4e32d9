package reconciliation

import (
	"time"
)

// Request bounds one reconciliation run. Both dates are required and
// inclusive.
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// RowFailure records one observation the engine could not update. Failures
// never abort the run; observations are independent and the range is
// idempotently re-runnable.
type RowFailure struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Error      string `json:"error"`
}

// Summary is returned to the caller for display. It is not authoritative
// state; the rewritten observation rows are.
type Summary struct {
	RunID                   string       `json:"run_id"`
	TotalProcessed          int          `json:"total_processed"`
	UnapprovedCount         int          `json:"unapproved_count"`
	UpdatedCount            int          `json:"updated_count"`
	EligiblePopulationCount int          `json:"eligible_population_count"`
	Failures                []RowFailure `json:"failures,omitempty"`
	UpdatedAt               time.Time    `json:"updated_at"`
}
