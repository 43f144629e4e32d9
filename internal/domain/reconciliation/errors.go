package reconciliation

import "errors"

// Reconciliation domain errors
var (
	ErrMissingDates     = errors.New("start_date and end_date are required")
	ErrInvalidDateRange = errors.New("end_date must be on or after start_date")
	ErrRangeTooLarge    = errors.New("date range exceeds the configured maximum span")
)
