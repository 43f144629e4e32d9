package attendance

import (
	"context"
	"time"
)

// ObservationRepository defines data access methods for attendance
// observations.
type ObservationRepository interface {
	// ListAbsent retrieves observations with the raw "Absent" status for
	// the given employees in [start, end] inclusive. Only these rows are
	// candidates for rewriting.
	ListAbsent(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Observation, error)

	// List retrieves observations with filters and pagination
	List(ctx context.Context, filter Filter) ([]Observation, int64, error)

	// UpdateStatus overwrites the status of a single observation
	UpdateStatus(ctx context.Context, id string, status string) error
}

// Filter holds query filters for observation listing
type Filter struct {
	EmployeeID *string
	Status     *string
	Start      *time.Time
	End        *time.Time
	Page       int
	Limit      int
}
