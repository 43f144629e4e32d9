package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsight/hr-analytics-go/internal/domain/analytics"
)

const defaultLeaderLimit = 5

type service struct {
	repo analytics.Repository
}

func NewAnalyticsService(repo analytics.Repository) analytics.Service {
	return &service{repo: repo}
}

// Headcount implements analytics.Service.
func (s *service) Headcount(ctx context.Context, asOf time.Time) (analytics.HeadcountResponse, error) {
	stats, err := s.repo.GetHeadcount(ctx, asOf)
	if err != nil {
		return analytics.HeadcountResponse{}, fmt.Errorf("failed to get headcount: %w", err)
	}

	return analytics.HeadcountResponse{
		AsOf:       asOf.Format("2006-01-02"),
		Total:      stats.Total,
		ByLocation: stats.ByLocation,
	}, nil
}

// WorkforceChanges implements analytics.Service.
func (s *service) WorkforceChanges(ctx context.Context, start, end time.Time) (analytics.WorkforceChangesResponse, error) {
	stats, err := s.repo.GetWorkforceChanges(ctx, start, end)
	if err != nil {
		return analytics.WorkforceChangesResponse{}, fmt.Errorf("failed to get workforce changes: %w", err)
	}

	return analytics.WorkforceChangesResponse{
		Start:     start.Format("2006-01-02"),
		End:       end.Format("2006-01-02"),
		Additions: stats.Additions,
		Exits:     stats.Exits,
	}, nil
}

// LeaveDistribution implements analytics.Service.
func (s *service) LeaveDistribution(ctx context.Context, start, end time.Time) (analytics.LeaveDistributionResponse, error) {
	types, err := s.repo.GetLeaveDistribution(ctx, start, end)
	if err != nil {
		return analytics.LeaveDistributionResponse{}, fmt.Errorf("failed to get leave distribution: %w", err)
	}

	return analytics.LeaveDistributionResponse{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
		Types: types,
	}, nil
}

// RegularizationLeaders implements analytics.Service.
func (s *service) RegularizationLeaders(ctx context.Context, start, end time.Time, limit int) (analytics.RegularizationLeadersResponse, error) {
	if limit <= 0 {
		limit = defaultLeaderLimit
	}

	leaders, err := s.repo.GetRegularizationLeaders(ctx, start, end, limit)
	if err != nil {
		return analytics.RegularizationLeadersResponse{}, fmt.Errorf("failed to get regularization leaders: %w", err)
	}

	return analytics.RegularizationLeadersResponse{
		Start:   start.Format("2006-01-02"),
		End:     end.Format("2006-01-02"),
		Leaders: leaders,
	}, nil
}

// UnapprovedAbsences implements analytics.Service.
func (s *service) UnapprovedAbsences(ctx context.Context, start, end time.Time) (analytics.UnapprovedAbsencesResponse, error) {
	total, byEmployee, err := s.repo.GetUnapprovedAbsences(ctx, start, end)
	if err != nil {
		return analytics.UnapprovedAbsencesResponse{}, fmt.Errorf("failed to get unapproved absences: %w", err)
	}

	return analytics.UnapprovedAbsencesResponse{
		Start:      start.Format("2006-01-02"),
		End:        end.Format("2006-01-02"),
		Total:      total,
		ByEmployee: byEmployee,
	}, nil
}

// SalaryByLocation implements analytics.Service.
func (s *service) SalaryByLocation(ctx context.Context) (analytics.SalaryByLocationResponse, error) {
	locations, err := s.repo.GetSalaryByLocation(ctx)
	if err != nil {
		return analytics.SalaryByLocationResponse{}, fmt.Errorf("failed to get salary by location: %w", err)
	}

	return analytics.SalaryByLocationResponse{Locations: locations}, nil
}
