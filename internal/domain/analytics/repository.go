package analytics

import (
	"context"
	"time"
)

// HeadcountStats holds the raw headcount numbers for a snapshot date
type HeadcountStats struct {
	Total      int64
	ByLocation []LocationCount
}

// WorkforceChangeStats holds additions and exits for a period
type WorkforceChangeStats struct {
	Additions int64
	Exits     int64
}

// Repository defines read-only aggregate queries over the employee,
// attendance, leave and regularization tables. All of them treat the
// reconciliation engine's output as the source of truth for whether a day
// is covered.
type Repository interface {
	// GetHeadcount returns headcount as of a date (joined on or before,
	// not yet exited) with a per-location breakdown
	GetHeadcount(ctx context.Context, asOf time.Time) (*HeadcountStats, error)

	// GetWorkforceChanges returns additions and exits in [start, end]
	GetWorkforceChanges(ctx context.Context, start, end time.Time) (*WorkforceChangeStats, error)

	// GetLeaveDistribution returns approved leave per type in [start, end],
	// with day counts clamped to the period
	GetLeaveDistribution(ctx context.Context, start, end time.Time) ([]LeaveTypeCount, error)

	// GetRegularizationLeaders returns the top regularization requesters in
	// [start, end], cancelled requests excluded
	GetRegularizationLeaders(ctx context.Context, start, end time.Time, limit int) ([]RegularizationLeader, error)

	// GetUnapprovedAbsences counts observations still marked "Absent" in
	// [start, end], total and per employee
	GetUnapprovedAbsences(ctx context.Context, start, end time.Time) (int64, []EmployeeAbsenceCount, error)

	// GetSalaryByLocation returns average base salary per location over
	// active employees
	GetSalaryByLocation(ctx context.Context) ([]LocationSalary, error)
}
