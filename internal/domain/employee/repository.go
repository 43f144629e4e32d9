package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// GetByID retrieves an employee by internal id
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)

	// ListByLocations retrieves all employees at the given work locations.
	// Used by the reconciliation engine to load the eligible population.
	ListByLocations(ctx context.Context, locations []string) ([]Employee, error)

	// ListNoticeEnded retrieves employees serving notice whose exit date is
	// on or before asOf (boundary inclusive)
	ListNoticeEnded(ctx context.Context, asOf time.Time) ([]Employee, error)

	// ListOnboardDue retrieves pending-onboard employees whose join date is
	// on or before asOf (boundary inclusive)
	ListOnboardDue(ctx context.Context, asOf time.Time) ([]Employee, error)

	// UpdateStatus updates the lifecycle status of a single employee
	UpdateStatus(ctx context.Context, id string, status Status) error
}
