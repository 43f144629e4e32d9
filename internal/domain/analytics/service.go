package analytics

import (
	"context"
	"time"
)

// Service exposes the dashboard aggregates
type Service interface {
	Headcount(ctx context.Context, asOf time.Time) (HeadcountResponse, error)
	WorkforceChanges(ctx context.Context, start, end time.Time) (WorkforceChangesResponse, error)
	LeaveDistribution(ctx context.Context, start, end time.Time) (LeaveDistributionResponse, error)
	RegularizationLeaders(ctx context.Context, start, end time.Time, limit int) (RegularizationLeadersResponse, error)
	UnapprovedAbsences(ctx context.Context, start, end time.Time) (UnapprovedAbsencesResponse, error)
	SalaryByLocation(ctx context.Context) (SalaryByLocationResponse, error)
}
