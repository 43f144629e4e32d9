package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffsight/hr-analytics-go/internal/domain/employee"
)

type service struct {
	employeeRepo employee.EmployeeRepository
}

func NewLifecycleService(employeeRepo employee.EmployeeRepository) employee.LifecycleService {
	return &service{employeeRepo: employeeRepo}
}

// Run implements employee.LifecycleService.
//
// Two date-threshold rules, boundary inclusive against asOf:
//   - notice_period employees whose exit date has passed go inactive
//   - pending_onboard employees whose join date has passed go active
//
// Each transition is attempted independently; a failed update is recorded
// in the result list and does not block the rest. A second run on the same
// day is a no-op: transitioned employees no longer match the filters.
func (s *service) Run(ctx context.Context, asOf time.Time) ([]employee.TransitionResult, error) {
	asOf = time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	slog.Info("Lifecycle: starting status transition run", "as_of", asOf.Format("2006-01-02"))

	noticeEnded, err := s.employeeRepo.ListNoticeEnded(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load notice-period employees: %w", err)
	}

	onboardDue, err := s.employeeRepo.ListOnboardDue(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending-onboard employees: %w", err)
	}

	results := make([]employee.TransitionResult, 0, len(noticeEnded)+len(onboardDue))
	results = append(results, s.transition(ctx, noticeEnded, employee.StatusInactive)...)
	results = append(results, s.transition(ctx, onboardDue, employee.StatusActive)...)

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}
	slog.Info("Lifecycle: run complete",
		"transitions", len(results),
		"succeeded", succeeded,
		"failed", len(results)-succeeded)

	return results, nil
}

func (s *service) transition(ctx context.Context, employees []employee.Employee, newStatus employee.Status) []employee.TransitionResult {
	results := make([]employee.TransitionResult, 0, len(employees))
	for _, emp := range employees {
		result := employee.TransitionResult{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			NewStatus:    string(newStatus),
			Success:      true,
		}
		if err := s.employeeRepo.UpdateStatus(ctx, emp.ID, newStatus); err != nil {
			slog.Error("Lifecycle: failed to update employee status",
				"employee_id", emp.ID,
				"new_status", newStatus,
				"error", err)
			msg := err.Error()
			result.Success = false
			result.Error = &msg
		}
		results = append(results, result)
	}
	return results
}
